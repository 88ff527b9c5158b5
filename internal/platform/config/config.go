package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults reproduce the fixed CSSE1001 deployment target; a course directory
// without an mpt.yml behaves exactly like the original single-course setup.
const (
	DefaultCourse       = "CSSE1001"
	DefaultHost         = "csse1001.uqcloud.net"
	DefaultBasePath     = "/opt/local/share/MyPyTutor/MPT3_CSSE1001"
	DefaultPushPattern  = "tutorial_*"
	DefaultDelaySeconds = 3
)

const configFileName = "mpt.yml"

type DeployConfig struct {
	Host     string
	BasePath string
	Pattern  string
	Delay    time.Duration
}

type Config struct {
	CoursePath  string
	CourseName  string
	CatalogPath string
	DataPath    string
	RosterPath  string
	DBPath      string
	CodesPath   string
	LogPath     string
	ViewersPath string
	Deploy      DeployConfig
}

type fileConfig struct {
	Course string `yaml:"course"`
	Deploy struct {
		Host         string `yaml:"host"`
		BasePath     string `yaml:"base_path"`
		Pattern      string `yaml:"pattern"`
		DelaySeconds *int   `yaml:"delay_seconds"`
	} `yaml:"deploy"`
}

func New(coursePath string) (Config, error) {
	if coursePath == "" {
		return Config{}, fmt.Errorf("course path is required")
	}

	cfg := Config{
		CoursePath:  coursePath,
		CourseName:  DefaultCourse,
		CatalogPath: filepath.Join(coursePath, "tutorials.txt"),
		DataPath:    filepath.Join(coursePath, "data"),
		RosterPath:  filepath.Join(coursePath, "data", "user_info"),
		DBPath:      filepath.Join(coursePath, ".mpt", "mpt.db"),
		CodesPath:   filepath.Join(coursePath, ".mpt", "codes"),
		LogPath:     filepath.Join(coursePath, ".mpt", "mpt.log"),
		ViewersPath: filepath.Join(coursePath, "viewers", "viewers.yaml"),
		Deploy: DeployConfig{
			Host:     DefaultHost,
			BasePath: DefaultBasePath,
			Pattern:  DefaultPushPattern,
			Delay:    DefaultDelaySeconds * time.Second,
		},
	}

	raw, err := os.ReadFile(filepath.Join(coursePath, configFileName))
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", configFileName, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", configFileName, err)
	}
	if fc.Course != "" {
		cfg.CourseName = fc.Course
	}
	if fc.Deploy.Host != "" {
		cfg.Deploy.Host = fc.Deploy.Host
	}
	if fc.Deploy.BasePath != "" {
		cfg.Deploy.BasePath = fc.Deploy.BasePath
	}
	if fc.Deploy.Pattern != "" {
		cfg.Deploy.Pattern = fc.Deploy.Pattern
	}
	if fc.Deploy.DelaySeconds != nil {
		if *fc.Deploy.DelaySeconds < 0 {
			return Config{}, fmt.Errorf("parse %s: delay_seconds must not be negative", configFileName)
		}
		cfg.Deploy.Delay = time.Duration(*fc.Deploy.DelaySeconds) * time.Second
	}
	return cfg, nil
}
