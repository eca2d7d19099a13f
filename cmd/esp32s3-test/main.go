// Command esp32s3-test: build-validation smoke test for the ESP32-S3 target.
// Prints the chip inventory once, then blinks the onboard LED forever.
//
// Build/flash (TinyGo):
//   tinygo flash -target xiao-esp32s3 ./cmd/esp32s3-test
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

	prof := boards.ESP32S3
	config.Apply(&prof)

	p := platform.Get()
	diag.Report(p, prof)
	heartbeat.Run(p, heartbeat.FromProfile(prof))
}
