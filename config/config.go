// Package config 提供服务配置（YAML + 环境变量覆盖）与配置驱动的
// Pipeline Node 工厂。
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config 是服务配置。除数据集路径与海报服务凭证外没有必填项，
// 其余字段都有默认值。
type Config struct {
	Server struct {
		Addr string `yaml:"addr"` // 监听地址，默认 ":8080"
	} `yaml:"server"`

	Dataset struct {
		Path string `yaml:"path"` // 影片 CSV 数据集路径
	} `yaml:"dataset"`

	Recommend struct {
		TopN  int      `yaml:"top_n"` // 默认 5
		Rules []string `yaml:"rules"` // 可选 CEL 规则，全部为真才保留候选
	} `yaml:"recommend"`

	Poster struct {
		APIKey      string `yaml:"api_key"` // 可被 OMDB_API_KEY 覆盖
		Endpoint    string `yaml:"endpoint"`
		Placeholder string `yaml:"placeholder"`
		Timeout     int    `yaml:"timeout"` // 秒，默认 3

		Cache struct {
			Backend string `yaml:"backend"` // none / memory / redis，默认 none
			Addr    string `yaml:"addr"`    // redis 地址
			DB      int    `yaml:"db"`
			TTL     int    `yaml:"ttl"` // 秒
		} `yaml:"cache"`
	} `yaml:"poster"`
}

// Load 从 YAML 文件加载配置并应用环境变量覆盖。
// path 为空时只用默认值 + 环境变量。
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Recommend.TopN = 5
	cfg.Poster.Timeout = 3
	cfg.Poster.Cache.Backend = "none"

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// 环境变量覆盖（凭证不落盘）
	if v := os.Getenv("OMDB_API_KEY"); v != "" {
		cfg.Poster.APIKey = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv("DATASET_PATH"); v != "" {
		cfg.Dataset.Path = v
	}

	if cfg.Dataset.Path == "" {
		return nil, fmt.Errorf("config: dataset path is required")
	}
	return cfg, nil
}

// PosterTimeout 返回海报查询超时时长。
func (c *Config) PosterTimeout() time.Duration {
	return time.Duration(c.Poster.Timeout) * time.Second
}
