package state

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"fnotes/internal/config"
	"fnotes/internal/constants"
	"fnotes/internal/export"
	"fnotes/internal/remote"
	"fnotes/internal/session"
	"fnotes/internal/store"
)

// State bundles the client's long-lived collaborators so commands receive
// one wired object instead of constructing their own.
type State struct {
	Config   *config.Config
	Client   *remote.Client
	Session  *session.Manager
	Store    *store.Notes
	Exporter *export.Exporter
	Home     string
	Log      zerolog.Logger
}

func NewState() (*State, error) {
	home, err := GetHomeDir()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(home)
	if err != nil {
		return nil, err
	}

	log := NewLogger()

	client := remote.NewClient(cfg.ServerURL, func() string { return cfg.Token }, log)
	sess := session.NewManager(cfg, client, log)
	notes := store.NewNotes(client, log)

	exporter := export.NewExporter(cfg.ExportDir, log)
	if cfg.Share.Clipboard {
		exporter.AddSharer(export.ClipboardSharer{})
	}
	if cfg.Share.S3Bucket != "" {
		exporter.AddSharer(export.NewS3Sharer(export.S3Options{
			Bucket:    cfg.Share.S3Bucket,
			Region:    cfg.Share.S3Region,
			Prefix:    cfg.Share.S3Prefix,
			AccessKey: cfg.Share.S3Access,
			SecretKey: cfg.Share.S3Secret,
		}))
	}
	if cfg.ArchiveExports {
		exporter.SetArchive(export.NewArchive(cfg.ExportDir))
	}

	return &State{
		Config:   cfg,
		Client:   client,
		Session:  sess,
		Store:    notes,
		Exporter: exporter,
		Home:     home,
		Log:      log,
	}, nil
}

// AutosaveInterval reports the configured debounce interval for note edits.
func (s *State) AutosaveInterval() time.Duration {
	ms := s.Config.AutosaveMillis
	if ms <= 0 {
		ms = constants.DefaultAutosaveMillis
	}
	return time.Duration(ms) * time.Millisecond
}

func GetHomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory. err: %s", err)
	}

	return home, nil
}

func LoadConfig(home string) (*config.Config, error) {
	viper.AddConfigPath(home + constants.ConfigDir)
	viper.SetConfigName(constants.ConfigFile)
	viper.SetConfigType(constants.ConfigFileType)
	viper.ReadInConfig()

	err := config.EnsureConfigExists(home)
	if err != nil {
		return nil, err
	}

	return config.Load(home)
}

// NewLogger builds the client's console logger. Verbosity follows the
// FNOTES_DEBUG environment variable so normal runs stay quiet.
func NewLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if os.Getenv("FNOTES_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    !term.IsTerminal(int(os.Stderr.Fd())),
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
