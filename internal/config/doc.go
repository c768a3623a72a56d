// Package config defines runtime settings shared by the bridge binaries and
// provides helpers to load, validate and save them.
//
// Settings are read from an optional YAML file and then overridden by
// environment variables (BIND_IP, BIND_PORT, SIA_ACCOUNT, SIA_ENCRYPTION_KEY,
// GATEWAY_ADDRESS, IMOU_APP_ID, IMOU_APP_SECRET, LOG_LEVEL), which is the
// expected configuration path for containerised deployments.
package config
