package params

import (
	"encoding/hex"
	"io/ioutil"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// LoadChainConfigFile load, convert hex values into valid param yaml format,
// unmarshal, and apply beacon chain config file.
func LoadChainConfigFile(chainConfigFileName string) {
	yamlFile, err := ioutil.ReadFile(chainConfigFileName) // #nosec G304
	if err != nil {
		log.WithError(err).Fatal("Failed to read chain config file.")
	}
	// Default to using mainnet.
	conf := MainnetConfig().Copy()
	// To track if config name is defined inside config file.
	hasConfigName := false
	// Convert 0x hex inputs to fixed bytes arrays.
	lines := strings.Split(string(yamlFile), "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "CONFIG_NAME") {
			hasConfigName = true
		}
		if strings.HasPrefix(line, "PRESET_BASE: 'minimal'") ||
			strings.HasPrefix(line, `PRESET_BASE: "minimal"`) ||
			strings.HasPrefix(line, "PRESET_BASE: minimal") {
			conf = MinimalSpecConfig().Copy()
		}
		if !strings.HasPrefix(line, "#") && strings.Contains(line, "0x") {
			parts := replaceHexStringWithYAMLFormat(line)
			lines[i] = strings.Join(parts, "\n")
		}
	}
	yamlFile = []byte(strings.Join(lines, "\n"))
	if err := yaml.UnmarshalStrict(yamlFile, conf); err != nil {
		if _, ok := err.(*yaml.TypeError); !ok {
			log.WithError(err).Fatal("Failed to parse chain config yaml file.")
		} else {
			log.WithError(err).Error("There were some issues parsing the config from a yaml file")
		}
	}
	if !hasConfigName {
		conf.ConfigName = "devnet"
	}
	log.Debugf("Config file values: %+v", conf)
	OverrideBeaconConfig(conf)
}

// replaceHexStringWithYAMLFormat rewrites hex strings into a representation
// the yaml parser understands for fixed byte array fields.
func replaceHexStringWithYAMLFormat(line string) []string {
	parts := strings.Split(line, "0x")
	if len(parts) < 2 {
		return parts
	}
	decoded, err := hex.DecodeString(strings.TrimSpace(parts[1]))
	if err != nil {
		log.WithError(err).Error("Failed to decode hex string.")
		return parts
	}
	b, err := yaml.Marshal(decoded)
	if err != nil {
		log.WithError(err).Error("Failed to marshal config file.")
		return parts
	}
	parts[0] += string(b)
	parts = parts[:1]
	return parts
}
