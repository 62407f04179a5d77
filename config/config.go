package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Configuration aggregates every per-concern configuration block.
type Configuration struct {
	Server       ServerConfiguration
	Database     DatabaseConfiguration
	Auth         AuthConfiguration
	Banking      BankingConfiguration
	Identity     IdentityConfiguration
	Notification NotificationConfiguration
	Redis        RedisConfiguration
}

// SetupConfig loads the .env file (when present) and enables automatic
// environment-variable binding. A missing config file is not fatal: the
// process can run entirely from the environment, which is how tests run.
func SetupConfig() error {
	viper.AddConfigPath("../../../..")
	viper.AddConfigPath("../../..")
	viper.AddConfigPath("../..")
	viper.AddConfigPath("..")
	viper.AddConfigPath(".")

	envFilePath := os.Getenv("ENV_FILE_PATH")
	if envFilePath == "" {
		envFilePath = ".env"
	}

	viper.SetConfigName(envFilePath)
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Error reading config file, %s", err)
			return err
		}
	}

	return nil
}

func init() {
	if err := SetupConfig(); err != nil {
		panic(fmt.Sprintf("config SetupConfig() error: %s", err))
	}
}
