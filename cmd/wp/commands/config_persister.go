package commands

import (
	"sync"
)

// ConfigPersister implements the wp.TokenPersister interface by writing the
// token to the CLI config file.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// SaveToken stores the token together with the site it was issued for.
func (p *ConfigPersister) SaveToken(siteURL, token string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Load current config
	config, err := loadConfigFile()
	if err != nil {
		return err
	}

	config.Token = token
	config.TokenSite = siteURL

	// Save the updated config
	return saveConfigStruct(config)
}
