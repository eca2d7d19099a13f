// Command esp8266-test: build-validation smoke test for the ESP8266 target.
// Prints the chip inventory once, then blinks the onboard LED forever. The
// NodeMCU LED is wired active-low; the profile carries the inverted polarity.
//
// Build/flash (TinyGo):
//   tinygo flash -target nodemcu ./cmd/esp8266-test
package main

import (
	"time"

	"esptest-go/boards"
	"esptest-go/platform"
	"esptest-go/services/config"
	"esptest-go/services/diag"
	"esptest-go/services/heartbeat"
)

func main() {
	time.Sleep(2 * time.Second)

	prof := boards.ESP8266
	config.Apply(&prof)

	p := platform.Get()
	diag.Report(p, prof)
	heartbeat.Run(p, heartbeat.FromProfile(prof))
}
