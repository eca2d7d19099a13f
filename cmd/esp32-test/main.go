// Command esp32-test: build-validation smoke test for the ESP32 target.
// Prints the chip inventory once, then blinks the onboard LED forever.
//
// Build/flash (TinyGo):
//   tinygo flash -target esp32-coreboard-v2 ./cmd/esp32-test
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
	// Let the serial adapter settle before the diagnostic block.
	time.Sleep(2 * time.Second)

	prof := boards.ESP32
	config.Apply(&prof)

	p := platform.Get()
	diag.Report(p, prof)
	heartbeat.Run(p, heartbeat.FromProfile(prof))
}
