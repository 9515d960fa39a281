package hf

import (
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/jide-lab/fieldlens/internal/llm"
)

// Config for the hosted question-answering inference client.
type Config struct {
	APIKey  string        // if empty, falls back to env QA_API_KEY
	BaseURL string        // default https://api-inference.huggingface.co
	Model   string        // e.g. "distilbert-base-cased-distilled-squad"
	Timeout time.Duration // http client timeout
}

// Client asks one hosted QA model. It implements llm.Model.
type Client struct {
	cfg        Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient builds a client bound to cfg.Model.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("QA_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api-inference.huggingface.co"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger,
	}
}

// Resolver caches one client per model name, so each field extractor's
// resolve step hands back a shared handle for that model.
type Resolver struct {
	cfg    Config
	log    *slog.Logger
	mu     sync.Mutex
	byName map[string]*Client
}

// NewResolver builds a resolver; cfg.Model is ignored, the requested model
// name wins.
func NewResolver(cfg Config, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{cfg: cfg, log: logger, byName: make(map[string]*Client)}
}

// Resolve returns the client for modelName, creating it on first use.
func (r *Resolver) Resolve(modelName string) (llm.Model, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.byName[modelName]; ok {
		return c, nil
	}
	cfg := r.cfg
	cfg.Model = modelName
	c := NewClient(cfg, r.log)
	r.byName[modelName] = c
	return c, nil
}
