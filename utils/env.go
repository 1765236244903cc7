package utils

import "github.com/joho/godotenv"

// LoadEnv loads .env files into the process environment without
// overriding variables that are already set. It reports whether any file
// was loaded.
func LoadEnv(files ...string) bool {
	if err := godotenv.Load(files...); err != nil {
		Info("No .env file found, continuing...")
		return false
	}
	return true
}
