package config

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"runtime_dir":    "",
		"file_lock":      false,
		"shell":          "/bin/sh",
		"xtype_delay_ms": 150,
		"secret_dir":     "/tmp",
		"notify.title":   "",
		"notify.urgency": "",
	}
}
