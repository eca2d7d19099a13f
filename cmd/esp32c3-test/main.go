// Command esp32c3-test: build-validation smoke test for the ESP32-C3 target.
// Prints the chip inventory once, then blinks the onboard LED forever.
//
// Build/flash (TinyGo):
//   tinygo flash -target xiao-esp32c3 ./cmd/esp32c3-test
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

	prof := boards.ESP32C3
	config.Apply(&prof)

	p := platform.Get()
	diag.Report(p, prof)
	heartbeat.Run(p, heartbeat.FromProfile(prof))
}
