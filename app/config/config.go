package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log         Log         `yaml:"log"`
	Server      Server      `yaml:"server"`
	Twilio      Twilio      `yaml:"twilio"`
	OpenAI      OpenAI      `yaml:"openai"`
	HuggingFace HuggingFace `yaml:"huggingface"`
	News        News        `yaml:"news"`
}

type Server struct {
	// Listen address of the webhook server
	Addr string `yaml:"addr" example:":3000"`
}

type Twilio struct {
	// Twilio account SID
	AccountSID string `yaml:"account_sid" example:"AC1234567890abcdef1234567890abcdef" validate:"required"`
	// Twilio auth token
	AuthToken string `yaml:"auth_token" example:"abcdef1234567890abcdef1234567890" validate:"required"`
	// Sender address, including channel prefix
	From string `yaml:"from" example:"whatsapp:+14155238886" validate:"required"`
}

type OpenAI struct {
	// OpenAI-compatible base url
	BaseURL string `yaml:"base_url" example:"https://api.openai.com/v1" validate:"required"`
	// OpenAI token
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX" validate:"required"`
	// Completion model
	Model string `yaml:"model" example:"gpt-4o-mini" validate:"required"`
}

type HuggingFace struct {
	// Inference API token
	Token string `yaml:"token" example:"hf_abcDEFghiJKLmnoPQRstuVWXyz123456"`
	// Sentiment classification model
	SentimentModel string `yaml:"sentiment_model" example:"distilbert-base-uncased-finetuned-sst-2-english"`
	// Named entity recognition model
	NERModel string `yaml:"ner_model" example:"dslim/bert-base-NER"`
}

type News struct {
	// NewsAPI access key
	APIKey string `yaml:"api_key" example:"9666f308108041ccbbae68f28ea728c5" validate:"required"`
	// Country code for top headlines
	Country string `yaml:"country" example:"us"`
}

type Log struct {
	// Minimum console log level: debug, info, warn or error
	Level string `yaml:"level" example:"debug"`
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Addr == "" {
		result.Server.Addr = ":3000"
	}
	if result.Log.Level == "" {
		result.Log.Level = "debug"
	}
	if result.HuggingFace.SentimentModel == "" {
		result.HuggingFace.SentimentModel = "distilbert-base-uncased-finetuned-sst-2-english"
	}
	if result.HuggingFace.NERModel == "" {
		result.HuggingFace.NERModel = "dslim/bert-base-NER"
	}
	if result.News.Country == "" {
		result.News.Country = "us"
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
