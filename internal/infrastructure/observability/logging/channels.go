// Package logging provides structured logging channels for cardpress
// operations.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Channel represents a logical logging channel for different system
// components.
type Channel string

const (
	// System channels
	ChannelSystem   Channel = "system"   // General system operations
	ChannelStartup  Channel = "startup"  // Application startup and initialization
	ChannelShutdown Channel = "shutdown" // Application shutdown and cleanup

	// Business logic channels
	ChannelRender Channel = "render" // Card rendering operations
	ChannelBuild  Channel = "build"  // Batch build runs
	ChannelFetch  Channel = "fetch"  // Remote card record fetching
	ChannelHTTP   Channel = "http"   // HTTP request handling

	// Monitoring channels
	ChannelPerf Channel = "performance" // Performance markers
)

// LoggerConfig contains configuration options for the channeled logger.
type LoggerConfig struct {
	OutputToFile    bool       `json:"outputToFile"`
	OutputToConsole bool       `json:"outputToConsole"`
	LogDirectory    string     `json:"logDirectory"`
	JSONFormat      bool       `json:"jsonFormat"`
	DefaultLevel    slog.Level `json:"defaultLevel"`
}

// DefaultLoggerConfig returns a sensible default configuration.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: true,
		LogDirectory:    "logs",
		JSONFormat:      false,
		DefaultLevel:    slog.LevelInfo,
	}
}

// ChanneledLogger provides structured logging with multiple channels.
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	config   *LoggerConfig
}

// NewChanneledLogger creates a new channeled logger with the given
// configuration.
func NewChanneledLogger(config *LoggerConfig) (*ChanneledLogger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}

	logger := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   config,
	}

	if config.OutputToFile {
		if err := os.MkdirAll(config.LogDirectory, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	channels := []Channel{
		ChannelSystem, ChannelStartup, ChannelShutdown,
		ChannelRender, ChannelBuild, ChannelFetch, ChannelHTTP,
		ChannelPerf,
	}

	for _, channel := range channels {
		channelLogger, err := logger.createChannelLogger(channel)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger for channel %s: %w", channel, err)
		}
		logger.channels[channel] = channelLogger
	}

	return logger, nil
}

// createChannelLogger creates a slog.Logger for a specific channel.
func (cl *ChanneledLogger) createChannelLogger(channel Channel) (*slog.Logger, error) {
	var writers []io.Writer

	if cl.config.OutputToConsole {
		writers = append(writers, os.Stdout)
	}

	if cl.config.OutputToFile {
		filename := fmt.Sprintf("%s.log", string(channel))
		path := filepath.Join(cl.config.LogDirectory, filename)

		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		writers = append(writers, file)
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{Level: cl.config.DefaultLevel}

	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler).With("channel", string(channel)), nil
}

// channel returns the logger for a channel, falling back to the system
// channel for safety.
func (cl *ChanneledLogger) channel(c Channel) *slog.Logger {
	if logger, ok := cl.channels[c]; ok {
		return logger
	}
	return cl.channels[ChannelSystem]
}

// System returns the general system operations logger.
func (cl *ChanneledLogger) System() *slog.Logger { return cl.channel(ChannelSystem) }

// Startup returns the startup sequence logger.
func (cl *ChanneledLogger) Startup() *slog.Logger { return cl.channel(ChannelStartup) }

// Shutdown returns the shutdown sequence logger.
func (cl *ChanneledLogger) Shutdown() *slog.Logger { return cl.channel(ChannelShutdown) }

// Render returns the card rendering logger.
func (cl *ChanneledLogger) Render() *slog.Logger { return cl.channel(ChannelRender) }

// Build returns the batch build logger.
func (cl *ChanneledLogger) Build() *slog.Logger { return cl.channel(ChannelBuild) }

// Fetch returns the remote fetch logger.
func (cl *ChanneledLogger) Fetch() *slog.Logger { return cl.channel(ChannelFetch) }

// HTTP returns the request handling logger.
func (cl *ChanneledLogger) HTTP() *slog.Logger { return cl.channel(ChannelHTTP) }

// Perf returns the performance marker logger.
func (cl *ChanneledLogger) Perf() *slog.Logger { return cl.channel(ChannelPerf) }
