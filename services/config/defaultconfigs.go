package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// One JSON document per device profile, keyed by profile name. The shipped
// values restate the compiled defaults; edit before flashing to change the
// blink cadence without touching the profile table.
// -----------------------------------------------------------------------------

const cfgESP32 = `{
  "heartbeat": {
      "interval_ms": 1000
  }
}`

const cfgESP32C3 = `{
  "heartbeat": {
      "interval_ms": 500
  }
}`

const cfgESP32S3 = `{
  "heartbeat": {
      "interval_ms": 500
  }
}`

const cfgESP8266 = `{
  "heartbeat": {
      "interval_ms": 750
  }
}`

var embeddedConfigs = map[string][]byte{
	"ESP32":    []byte(cfgESP32),
	"ESP32-C3": []byte(cfgESP32C3),
	"ESP32-S3": []byte(cfgESP32S3),
	"ESP8266":  []byte(cfgESP8266),
}
