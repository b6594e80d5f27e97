package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the server needs at startup. Client-only runs skip this by
// going through [GetClientConfig], which applies its own rules.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.ServerAddress == "" {
		return ErrInvalidClientConfigs
	}

	if cfg.CachePath == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
