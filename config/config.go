// Package config is responsible for setting the program config from
// the config file, environment variables, and command-line arguments.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"

	"github.com/tourcue/tourcue/timeline"
)

// Version is the program version, set at build time.
var Version = "dev"

var (
	configDir      = "tourcue"
	configFileName = "config.yml"
	dbFileName     = "tourcue.db"
	logFileName    = "tourcue.log"
)

const (
	defaultFPS         = 30
	defaultProjectName = "Audio Tour Timeline"
)

// FrameRates are the accepted export frame rates.
var FrameRates = timeline.FrameRates

const (
	keyFPS           = "fps"
	keyProjectName   = "project_name"
	keyNotify        = "notify"
	keyDarkTheme     = "dark_theme"
	keyPostExportCmd = "post_export_cmd"
	keySTTURL        = "stt_url"
	keySTTKey        = "stt_api_key"
	keyScriptURL     = "scriptgen_url"
	keyScriptKey     = "scriptgen_api_key"
	keyTTSURL        = "tts_url"
	keyTTSKey        = "tts_api_key"
	keyTTSVoice      = "tts_voice"
	keySFXURL        = "sfx_url"
	keySFXKey        = "sfx_api_key"
)

// Service holds the connection settings for one hosted collaborator.
type Service struct {
	BaseURL string
	APIKey  string
}

// App represents the program configuration derived from the config file
// and command-line arguments.
type App struct {
	PathToConfig  string
	PathToDB      string
	PathToLog     string
	ProjectName   string
	PostExportCmd string
	TTSVoice      string
	STT           Service
	ScriptGen     Service
	TTS           Service
	SFX           Service
	FPS           int
	Notify        bool
	DarkTheme     bool
}

var appCfg = &App{}

var once sync.Once

func init() {
	if os.Getenv("TOURCUE_ENV") == "development" {
		configFileName = "config_dev.yml"
		dbFileName = "tourcue_dev.db"
	}
}

func defaults() {
	viper.SetDefault(keyFPS, defaultFPS)
	viper.SetDefault(keyProjectName, defaultProjectName)
	viper.SetDefault(keyNotify, true)
	viper.SetDefault(keyDarkTheme, true)
	viper.SetDefault(keyPostExportCmd, "")
	viper.SetDefault(keySTTURL, "")
	viper.SetDefault(keySTTKey, "")
	viper.SetDefault(keyScriptURL, "")
	viper.SetDefault(keyScriptKey, "")
	viper.SetDefault(keyTTSURL, "")
	viper.SetDefault(keyTTSKey, "")
	viper.SetDefault(keyTTSVoice, "")
	viper.SetDefault(keySFXURL, "")
	viper.SetDefault(keySFXKey, "")
}

// initAppConfig reads the configuration file, creating it with defaults
// on first run.
func initAppConfig() error {
	viper.SetConfigName(configFileName)
	viper.SetConfigType("yaml")

	relPath := filepath.Join(configDir, configFileName)

	pathToConfigFile, err := xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	appCfg.PathToConfig = pathToConfigFile

	viper.AddConfigPath(filepath.Dir(appCfg.PathToConfig))

	viper.SetEnvPrefix("TOURCUE")
	viper.AutomaticEnv()

	defaults()

	if err := viper.ReadInConfig(); err != nil {
		if errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return viper.WriteConfigAs(appCfg.PathToConfig)
		}

		return err
	}

	return nil
}

func setAppConfig(ctx *cli.Context) error {
	pathToDB, err := xdg.DataFile(filepath.Join(configDir, dbFileName))
	if err != nil {
		return err
	}

	appCfg.PathToDB = pathToDB

	pathToLog, err := xdg.DataFile(filepath.Join(configDir, logFileName))
	if err != nil {
		return err
	}

	appCfg.PathToLog = pathToLog

	appCfg.FPS = viper.GetInt(keyFPS)
	appCfg.ProjectName = viper.GetString(keyProjectName)
	appCfg.Notify = viper.GetBool(keyNotify)
	appCfg.DarkTheme = viper.GetBool(keyDarkTheme)
	appCfg.PostExportCmd = viper.GetString(keyPostExportCmd)
	appCfg.TTSVoice = viper.GetString(keyTTSVoice)
	appCfg.STT = Service{
		BaseURL: viper.GetString(keySTTURL),
		APIKey:  viper.GetString(keySTTKey),
	}
	appCfg.ScriptGen = Service{
		BaseURL: viper.GetString(keyScriptURL),
		APIKey:  viper.GetString(keyScriptKey),
	}
	appCfg.TTS = Service{
		BaseURL: viper.GetString(keyTTSURL),
		APIKey:  viper.GetString(keyTTSKey),
	}
	appCfg.SFX = Service{
		BaseURL: viper.GetString(keySFXURL),
		APIKey:  viper.GetString(keySFXKey),
	}

	// set from command-line arguments
	if ctx.Int("fps") > 0 {
		appCfg.FPS = ctx.Int("fps")
	}

	if ctx.String("project-name") != "" {
		appCfg.ProjectName = ctx.String("project-name")
	}

	if ctx.Bool("disable-notification") {
		appCfg.Notify = false
	}

	if !slices.Contains(FrameRates, appCfg.FPS) {
		return errInvalidFPS
	}

	if strings.TrimSpace(appCfg.ProjectName) == "" {
		return errEmptyProjectName
	}

	return nil
}

// Get initializes and returns the app configuration. Initialization
// happens once no matter how many times it is called.
func Get(ctx *cli.Context) *App {
	once.Do(func() {
		err := initAppConfig()
		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}

		err = setAppConfig(ctx)
		if err != nil {
			pterm.Error.Printfln("%s: %s", errInitFailed.Error(), err.Error())
			os.Exit(1)
		}
	})

	return appCfg
}

// DBFilePath returns the path to the archive database.
func DBFilePath() string {
	return appCfg.PathToDB
}

// LogFilePath returns the path to the rotating log file.
func LogFilePath() string {
	return appCfg.PathToLog
}

// ExportFileName derives the timeline file name from a project name by
// replacing spaces so the result is shell-friendly.
func ExportFileName(projectName string) string {
	name := strings.ReplaceAll(strings.TrimSpace(projectName), " ", "_")
	if name == "" {
		name = "timeline"
	}

	return name + "_timeline.xml"
}
