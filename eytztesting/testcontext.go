package eytztesting

import (
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

// TestContext bundles the logger, test handle and configuration that fixture
// runs share.
type TestContext struct {
	Log logger.Logger
	T   *testing.T
	cfg TestConfig
}

type TestConfig struct {
	// Seed drives every generator created by NewGenerator. It is normal to
	// force it to a fixed value so that the generated data is the same from
	// run to run.
	Seed            int64
	TestLabelPrefix string
	LogLevel        string // defaults to NOOP
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	c := TestContext{
		T:   t,
		cfg: cfg,
	}
	level := cfg.LogLevel
	if level == "" {
		level = "NOOP"
	}
	logger.New(level)
	c.Log = logger.Sugar.WithServiceName(cfg.TestLabelPrefix)
	return c
}

// NewGenerator returns a generator seeded from the context configuration.
// Each call starts the same sequence.
func (c *TestContext) NewGenerator() *TestGenerator {
	return NewTestGenerator(c.cfg.Seed)
}
