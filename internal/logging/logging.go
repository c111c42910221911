// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/ecom-backend/internal/config"
)

// Configure applies level and format to the standard logrus logger.
// Format "json" or a production environment selects the JSON formatter.
func Configure(logger *logrus.Logger, cfg config.LogConfig, production bool, out io.Writer) error {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	logger.SetLevel(level)

	if cfg.Format == "json" || production {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if out != nil {
		logger.SetOutput(out)
	}
	return nil
}
