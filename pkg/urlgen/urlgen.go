// Copyright 2026 pagegauge project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

// Package urlgen constructs URLs for pagegauge result pages and per-run
// artifacts (thumbnails, generated images, video files, response bodies).
//
// Two URL styles are supported. Friendly URLs encode the run context in path
// segments and rely on server-side rewriting ("/result/<id>/<run>/<page>/").
// Standard URLs pass the run context in the query string
// ("/<page>.php?test=<id>&run=<run>"). The style is chosen once, in New, and
// both styles expose the same Generator operation set.
//
// Generators are immutable after construction and safe for concurrent use.
// With the exception of GeneratedImage under the friendly style, every
// operation is a total, pure string computation. Parameter values are not
// escaped, the server treats test ids and artifact file names as opaque
// tokens and existing callers depend on byte-exact URLs.
package urlgen

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidTestID is returned by GeneratedImage under the friendly style
// when the first "_"-separated segment of the test id is shorter than the
// 6 characters the sharded results layout splits into path components.
var ErrInvalidTestID = errors.New("invalid test id")

// Generator produces absolute URLs for the resources of a single test run.
type Generator interface {
	// ResultPage returns the URL of the named result page, e.g. "result" or
	// "details". extraParams is appended verbatim to the query string and
	// may be empty.
	ResultPage(page, extraParams string) string
	// ResultSummary returns the URL of the summary page across all runs of
	// the test.
	ResultSummary(extraParams string) string
	// Thumbnail returns the URL of the thumbnail for the given image of
	// this run.
	Thumbnail(image string) string
	// GeneratedImage returns the URL of a server-generated image such as a
	// waterfall or connection view. Under the friendly style it fails with
	// ErrInvalidTestID if the test id cannot be mapped to a results shard.
	GeneratedImage(image string) (string, error)
	// FileURL returns the URL that serves a raw file of this test, video
	// names the video subdirectory and may be empty.
	FileURL(file, video string) string
	// GZipFileURL is like FileURL for files served through the gzip
	// endpoint.
	GZipFileURL(file string) string
	// ResponseBodyByRequest returns the URL of the response body captured
	// for the n-th request of this run.
	ResponseBodyByRequest(request int) string
	// ResponseBodyByBodyID returns the URL of the response body with the
	// given stored body id.
	ResponseBodyByBodyID(bodyID int) string
	// VideoURL returns the URL that creates the comparison video for this
	// run.
	VideoURL() string
	// DownloadVideoFramesURL returns the URL that serves the raw video
	// frames of this run.
	DownloadVideoFramesURL() string
}

// New returns a Generator for one run of one test. Friendly selects the
// path-segment URL style, otherwise query-string URLs are generated.
// Negative run values are clamped to 0, step values below 1 to 1 (step 1 is
// the implicit, unsuffixed step).
func New(friendly bool, baseURL, testID string, run int, cached bool, step int) Generator {
	ctx := runContext{
		base:   strings.TrimRight(baseURL, "/"),
		testID: testID,
		run:    run,
		cached: cached,
		step:   step,
	}
	if ctx.run < 0 {
		ctx.run = 0
	}
	if ctx.step < 1 {
		ctx.step = 1
	}
	if friendly {
		return &friendlyGenerator{ctx}
	}
	return &standardGenerator{ctx}
}

// runContext holds the identity of one run of one test. It is shared by both
// generator styles and never mutated after New.
type runContext struct {
	base   string
	testID string
	run    int
	cached bool
	step   int
}

// commonParams renders the query parameters identifying the run:
// "test=<id>&run=<run>", plus "cached=1" for cached runs and "step=<step>"
// for steps after the first.
func (ctx *runContext) commonParams() string {
	params := "test=" + ctx.testID + "&run=" + strconv.Itoa(ctx.run)
	if ctx.cached {
		params += "&cached=1"
	}
	if ctx.step > 1 {
		params += "&step=" + strconv.Itoa(ctx.step)
	}
	return params
}

// underscorePrefix namespaces artifact file names per run/step,
// e.g. "2_Cached_" or "1_3_" for step 3 of run 1.
func (ctx *runContext) underscorePrefix() string {
	prefix := strconv.Itoa(ctx.run) + "_"
	if ctx.cached {
		prefix += "Cached_"
	}
	if ctx.step > 1 {
		prefix += strconv.Itoa(ctx.step) + "_"
	}
	return prefix
}

func (ctx *runContext) FileURL(file, video string) string {
	url := ctx.base + "/getfile.php?test=" + ctx.testID
	if video != "" {
		url += "&video=" + video
	}
	return url + "&file=" + file
}

func (ctx *runContext) GZipFileURL(file string) string {
	url := ctx.base + "/getgzip.php?test=" + ctx.testID
	if strings.HasSuffix(file, ".gz") {
		url += "&compressed=1"
	}
	return url + "&file=" + file
}

func (ctx *runContext) ResponseBodyByRequest(request int) string {
	return ctx.base + "/response_body.php?" + ctx.commonParams() +
		"&request=" + strconv.Itoa(request)
}

func (ctx *runContext) ResponseBodyByBodyID(bodyID int) string {
	return ctx.base + "/response_body.php?" + ctx.commonParams() +
		"&bodyid=" + strconv.Itoa(bodyID)
}

func (ctx *runContext) VideoURL() string {
	cached := "0"
	if ctx.cached {
		cached = "1"
	}
	run := strconv.Itoa(ctx.run)
	tests := ctx.testID + "-r:" + run + "-c:" + cached
	id := ctx.testID + "." + run + "." + cached
	if ctx.step > 1 {
		step := strconv.Itoa(ctx.step)
		tests += "-s:" + step
		id += "." + step
	}
	return ctx.base + "/video/create.php?tests=" + tests + "&id=" + id
}

func (ctx *runContext) DownloadVideoFramesURL() string {
	return ctx.base + "/video/downloadFrames.php?" + ctx.commonParams()
}
