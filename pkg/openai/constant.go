package openai

import "time"

const (
	// DefaultBaseURL is the NVIDIA Integrate endpoint, which speaks the
	// OpenAI chat-completions protocol.
	DefaultBaseURL = "https://integrate.api.nvidia.com/v1"

	// DefaultModel is the default chat model
	DefaultModel = "nvidia/llama-3.1-nemotron-ultra-253b-v1"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	// maxBodyBytes caps how much of a response body is read.
	maxBodyBytes = 4 << 20

	chatCompletionsPath = "/chat/completions"
)

// Preset is a known OpenAI-compatible vendor endpoint.
type Preset struct {
	BaseURL string
	Model   string
}

// Presets maps provider names to their default endpoint and model.
var Presets = map[string]Preset{
	"nvidia":   {BaseURL: DefaultBaseURL, Model: DefaultModel},
	"openai":   {BaseURL: "https://api.openai.com/v1", Model: "gpt-4o-mini"},
	"deepseek": {BaseURL: "https://api.deepseek.com/v1", Model: "deepseek-chat"},
	"qwen":     {BaseURL: "https://dashscope-intl.aliyuncs.com/compatible-mode/v1", Model: "qwen-plus"},
}
