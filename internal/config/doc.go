// Package config loads the site configuration. Values layer in order:
// built-in defaults, an optional YAML file, PORTFOLIO_* environment
// variables, and the platform-provided PORT. A .env file in the working
// directory is loaded into the environment at startup.
package config
