// Copyright 2026 pagegauge project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// gauge-url prints result and artifact URLs for a test run. Useful for
// debugging rewrite rules and for scripting against a pagegauge server:
//
//	gauge-url -base https://gauge.example.com -test 210101_AB1234_1 -run 2 -cached result video
package main

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pagegauge/pagegauge/pkg/log"
	"github.com/pagegauge/pagegauge/pkg/tool"
	"github.com/pagegauge/pagegauge/pkg/urlgen"
)

var (
	flagBase     = flag.String("base", "http://localhost", "server base URL")
	flagTest     = flag.String("test", "", "test id")
	flagRun      = flag.Int("run", 1, "run number")
	flagCached   = flag.Bool("cached", false, "cached (repeat view) run")
	flagStep     = flag.Int("step", 1, "step number within a multi-step run")
	flagFriendly = flag.Bool("friendly", false, "generate friendly (rewrite-based) URLs")
)

func main() {
	defer tool.Init()()
	if *flagTest == "" || len(flag.Args()) == 0 {
		tool.Failf("usage: gauge-url -test <id> [-run N] [-cached] [-step N] [-friendly] resource...\n" +
			"resources: result[:page], summary, thumbnail:<image>, image:<image>,\n" +
			"           file:<name>, gzip:<name>, body:<n>, bodyid:<n>, video, frames")
	}
	gen := urlgen.New(*flagFriendly, *flagBase, *flagTest, *flagRun, *flagCached, *flagStep)
	for _, arg := range flag.Args() {
		log.Logf(1, "resolving resource %q", arg)
		url, err := resourceURL(gen, arg)
		if err != nil {
			tool.Fail(err)
		}
		fmt.Println(url)
	}
}

func resourceURL(gen urlgen.Generator, arg string) (string, error) {
	kind, value, _ := strings.Cut(arg, ":")
	switch kind {
	case "result":
		if value == "" {
			value = "result"
		}
		return gen.ResultPage(value, ""), nil
	case "summary":
		return gen.ResultSummary(""), nil
	case "thumbnail":
		if value == "" {
			return "", fmt.Errorf("resource %q: image name is required", arg)
		}
		return gen.Thumbnail(value), nil
	case "image":
		if value == "" {
			return "", fmt.Errorf("resource %q: image name is required", arg)
		}
		return gen.GeneratedImage(value)
	case "file":
		if value == "" {
			return "", fmt.Errorf("resource %q: file name is required", arg)
		}
		return gen.FileURL(value, ""), nil
	case "gzip":
		if value == "" {
			return "", fmt.Errorf("resource %q: file name is required", arg)
		}
		return gen.GZipFileURL(value), nil
	case "body":
		request, err := strconv.Atoi(value)
		if err != nil {
			return "", fmt.Errorf("resource %q: bad request number: %w", arg, err)
		}
		return gen.ResponseBodyByRequest(request), nil
	case "bodyid":
		bodyID, err := strconv.Atoi(value)
		if err != nil {
			return "", fmt.Errorf("resource %q: bad body id: %w", arg, err)
		}
		return gen.ResponseBodyByBodyID(bodyID), nil
	case "video":
		return gen.VideoURL(), nil
	case "frames":
		return gen.DownloadVideoFramesURL(), nil
	}
	return "", fmt.Errorf("unknown resource %q", arg)
}
