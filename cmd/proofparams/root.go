package main

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/spacemeshos/smutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/filecoin-project/go-proofs/config"
	"github.com/filecoin-project/go-proofs/merkle"
	"github.com/filecoin-project/go-proofs/persistence"
	"github.com/filecoin-project/go-proofs/shared"
)

const defaultConfigFileName = "config.toml"

var (
	defaultHomeDir    = filepath.Join(smutil.GetUserHomeDirectory(), "proofs")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFileName)
)

type paramsConfig struct {
	SectorSize uint64 `mapstructure:"sector-size"`
	Partitions uint   `mapstructure:"partitions"`
	PoRepID    string `mapstructure:"porep-id"`
	Tree       string `mapstructure:"tree"`
	DataDir    string `mapstructure:"datadir"`
	LogDebug   bool   `mapstructure:"logdebug"`
}

func defaultParamsConfig() *paramsConfig {
	return &paramsConfig{
		SectorSize: uint64(config.SectorSize32GiB),
		Partitions: 10,
		Tree:       "oct-lc",
		DataDir:    persistence.DefaultDataDir,
	}
}

var rootCmd = &cobra.Command{
	Use:   "proofparams",
	Short: "derive storage-proving public parameters",
	Long: `proofparams derives the deterministic public parameters of the
storage-proving protocols: replication (PoRep) and the winning and window
proof-of-spacetime flavors. The same configuration always derives the same
parameters, so output can be compared across hosts.`,
}

func init() {
	cfg := defaultParamsConfig()
	flags := rootCmd.PersistentFlags()

	flags.String("config", defaultConfigFile, "Path to configuration file")
	flags.Uint64("sector-size", cfg.SectorSize, "Sector size, in bytes")
	flags.Uint("partitions", cfg.Partitions, "Number of proof partitions")
	flags.String("porep-id", cfg.PoRepID, "Protocol identifier, in hex (zero if not provided)")
	flags.String("tree", cfg.Tree, "Commitment-tree shape (binary, oct, oct-lc)")
	flags.String("datadir", cfg.DataDir, "The directory that contains sealed sector state")
	flags.Bool("logdebug", cfg.LogDebug, "Whether to enable debug logging")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(porepCmd, winningCmd, windowCmd, seedCmd, policyCmd, checkCmd)
}

func loadConfig() (*paramsConfig, error) {
	fileLocation := smutil.GetCanonicalPath(viper.GetString("config"))
	viper.SetConfigFile(fileLocation)
	if err := viper.ReadInConfig(); err != nil {
		// A missing file at the default location is fine; one named
		// explicitly must exist.
		if fileLocation != smutil.GetCanonicalPath(defaultConfigFile) {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
	}

	cfg := defaultParamsConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}

	cfg.DataDir = smutil.GetCanonicalPath(cfg.DataDir)
	return cfg, nil
}

func newLogger(debug bool) (shared.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	zapCfg := zap.Config{
		Level:    level,
		Encoding: "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %v", err)
	}

	return zapLog{logger.Sugar()}, nil
}

// zapLog adapts a zap sugared logger to the module's logging surface.
type zapLog struct {
	s *zap.SugaredLogger
}

var _ shared.Logger = zapLog{}

func (l zapLog) Info(format string, args ...interface{})    { l.s.Infof(format, args...) }
func (l zapLog) Debug(format string, args ...interface{})   { l.s.Debugf(format, args...) }
func (l zapLog) Warning(format string, args ...interface{}) { l.s.Warnf(format, args...) }
func (l zapLog) Error(format string, args ...interface{})   { l.s.Errorf(format, args...) }
func (l zapLog) Panic(format string, args ...interface{})   { l.s.Panicf(format, args...) }

func logChangedFlags(logger shared.Logger) {
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			logger.Debug("flag override: %v=%v", f.Name, f.Value)
		}
	})
}

func parsePoRepID(hexStr string) (shared.PoRepID, error) {
	var id shared.PoRepID
	if hexStr == "" {
		return id, nil
	}

	raw, err := hex.DecodeString(hexStr)
	if err != nil {
		return id, fmt.Errorf("invalid porep-id: %v", err)
	}
	if len(raw) != len(id) {
		return id, fmt.Errorf("invalid porep-id length; expected: %d, given: %d", len(id), len(raw))
	}

	copy(id[:], raw)
	return id, nil
}

func treeByName(name string) (merkle.Tree, error) {
	switch name {
	case "binary":
		return merkle.DefaultBinaryTree, nil
	case "oct":
		return merkle.DefaultOctTree, nil
	case "oct-lc":
		return merkle.DefaultOctLCTree, nil
	default:
		return nil, fmt.Errorf("invalid `tree`; expected: one of binary, oct, oct-lc, given: %v", name)
	}
}
