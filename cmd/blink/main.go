//go:build avr

// Command blink is demo firmware for the kernel: three cooperating
// tasks, directly mirroring original_source/example1.cpp's blink_led,
// blink_led2, and test_restart. Two tasks toggle a plain GPIO pin each;
// the third drives an addressable LED through tinygo.org/x/drivers, and
// the first blinker periodically restarts that third task from scratch.
package main

import (
	"image/color"
	"machine"

	"tinygo.org/x/drivers/ws2812"

	"github.com/nrother/simple-os/kernel"
	"github.com/nrother/simple-os/platform"
)

var (
	stack0 [150]byte
	stack1 [40]byte // the OS needs roughly 35 bytes of this for itself
	stack2 [150]byte
)

const (
	taskBlink1     = 0
	taskBlink2     = 1
	taskRestarting = 2
)

var (
	led1  = machine.D2
	led2  = machine.D3
	pixel = machine.D4
)

func blinkLED1() {
	cnt := 0
	for {
		cnt++
		if cnt >= 10 {
			cnt = 0
			kernel.RestartTask(taskRestarting)
		}
		led1.High()
		kernel.Yield()
		led1.Low()
		kernel.Yield()
	}
}

func blinkLED2() {
	for {
		led2.High()
		kernel.Yield()
		led2.Low()
		kernel.Yield()
	}
}

// restartingTask drives the addressable LED and is itself restarted
// from blinkLED1 every ten of blinkLED1's cycles, exercising
// RestartTask's mid-execution discard of the target's stack: each
// restart forgets how far through its own 50-yield wait it had gotten.
// It returns instead of looping itself; the kernel's own trampoline
// calls it again and yields, so the LED write repeats on every pass
// with no risk of falling off the end of the function.
func restartingTask() {
	dev := ws2812.New(pixel)
	colors := make([]color.RGBA, 1)
	a := 0
	for a < 50 {
		kernel.Yield()
		a++
	}
	colors[0] = color.RGBA{G: 0xff, A: 0xff}
	_ = dev.WriteColors(colors)
}

func main() {
	led1.Configure(machine.PinConfig{Mode: machine.PinOutput})
	led2.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pixel.Configure(machine.PinConfig{Mode: machine.PinOutput})

	// The package-level default Kernel is sized for 2 tasks; this demo
	// needs 3, so it builds and installs its own before inserting any.
	kernel.SetDefault(kernel.New(kernel.Config{TaskCount: 3, SpaceReporting: true}, platform.Default))

	kernel.InsertTask(taskBlink1, blinkLED1, stack0[:])
	kernel.InsertTask(taskBlink2, blinkLED2, stack1[:])
	kernel.InsertTask(taskRestarting, restartingTask, stack2[:])

	kernel.StartMultitasking()
}
