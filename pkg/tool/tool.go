// Copyright 2026 pagegauge project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package tool contains helpers shared by pagegauge command line tools.
package tool

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	flagCPUProfile = flag.String("cpuprofile", "", "write CPU profile to this file")
	flagMemProfile = flag.String("memprofile", "", "write memory profile to this file")
)

// Init parses command line flags and returns a cleanup function that must be
// deferred for the duration of main:
//
//	defer tool.Init()()
func Init() func() {
	flag.Parse()
	return installProfiling(*flagCPUProfile, *flagMemProfile)
}

func installProfiling(cpuprof, memprof string) func() {
	stopCPU := func() {}
	if cpuprof != "" {
		f, err := os.Create(cpuprof)
		if err != nil {
			Failf("failed to create %v: %v", cpuprof, err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			Failf("failed to start cpu profiling: %v", err)
		}
		stopCPU = func() {
			pprof.StopCPUProfile()
			f.Close()
		}
	}
	return func() {
		stopCPU()
		if memprof == "" {
			return
		}
		f, err := os.Create(memprof)
		if err != nil {
			Failf("failed to create %v: %v", memprof, err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			Failf("failed to write memory profile: %v", err)
		}
	}
}

func Failf(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg+"\n", args...)
	os.Exit(1)
}

func Fail(err error) {
	Failf("%v", err)
}
