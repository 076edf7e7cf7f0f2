package config

type AppConfig struct {
	Server ServerConfig
	Log    LogConfig
	Rules  RulesConfig
}

func LoadApp() (AppConfig, error) {
	logCfg, err := LoadLog()
	if err != nil {
		return AppConfig{}, err
	}
	serverCfg, err := LoadServer()
	if err != nil {
		return AppConfig{}, err
	}
	rulesCfg, err := LoadRulesConfig()
	if err != nil {
		return AppConfig{}, err
	}
	return AppConfig{
		Server: serverCfg,
		Log:    logCfg,
		Rules:  rulesCfg,
	}, nil
}
