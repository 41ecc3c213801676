package main

import (
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// fileDefaults 是 YAML 配置文件提供的默认值。
// 命令行选项优先于配置文件。
type fileDefaults struct {
	Durable  bool   `koanf:"durable"`
	MaxBytes uint64 `koanf:"max_bytes"`
}

// loadFileDefaults 加载配置文件。
//
// path 为空表示未指定配置文件，返回零值默认。
// 文件不存在、YAML 非法或字段类型不匹配均视为错误，
// 不做静默降级——显式指定的配置必须生效。
func loadFileDefaults(path string) (fileDefaults, error) {
	var defaults fileDefaults
	if path == "" {
		return defaults, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return defaults, fmt.Errorf("read config %s: %w", path, err)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), yaml.Parser()); err != nil {
		return defaults, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := k.Unmarshal("", &defaults); err != nil {
		return defaults, fmt.Errorf("unmarshal config %s: %w", path, err)
	}
	return defaults, nil
}
