package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvBatchListPageSize = "JURITJ_BATCH_LIST_PAGE_SIZE"
)

// BatchConfig holds normalization batch parameters.
type BatchConfig struct {
	ListPageSize int32 `toml:"list_page_size"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *BatchConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *BatchConfig) Merge(overlay *BatchConfig) {
	if overlay.ListPageSize != 0 {
		c.ListPageSize = overlay.ListPageSize
	}
}

func (c *BatchConfig) loadDefaults() {
	if c.ListPageSize == 0 {
		c.ListPageSize = 100
	}
}

func (c *BatchConfig) loadEnv() {
	if v := os.Getenv(EnvBatchListPageSize); v != "" {
		if size, err := strconv.ParseInt(v, 10, 32); err == nil {
			c.ListPageSize = int32(size)
		}
	}
}

func (c *BatchConfig) validate() error {
	if c.ListPageSize < 1 {
		return fmt.Errorf("invalid list_page_size: %d", c.ListPageSize)
	}
	return nil
}
