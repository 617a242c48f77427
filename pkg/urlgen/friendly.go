// Copyright 2026 pagegauge project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package urlgen

import (
	"fmt"
	"strconv"
	"strings"
)

// friendlyGenerator emits path-segment URLs for servers with rewrite rules,
// e.g. "/result/210101_AB1234_1/2/result/cached/".
type friendlyGenerator struct {
	runContext
}

func (g *friendlyGenerator) ResultPage(page, extraParams string) string {
	url := g.base + "/result/" + g.testID + "/" + strconv.Itoa(g.run) + "/" + page + "/"
	if g.cached {
		url += "cached/"
	}
	if g.step > 1 {
		url += strconv.Itoa(g.step) + "/"
	}
	if extraParams != "" {
		url += "?" + extraParams
	}
	return url
}

func (g *friendlyGenerator) ResultSummary(extraParams string) string {
	url := g.base + "/result/" + g.testID + "/"
	if extraParams != "" {
		url += "?" + extraParams
	}
	return url
}

func (g *friendlyGenerator) Thumbnail(image string) string {
	return g.base + "/result/" + g.testID + "/" + g.underscorePrefix() + thumbName(image)
}

// GeneratedImage maps the test id onto the sharded results directory layout:
// the first 6 characters of the leading "_"-separated segment become three
// 2-character path components, the remaining segments follow as-is.
// "210101_AB1234_1" is served from "results/21/01/01/AB1234/1/".
func (g *friendlyGenerator) GeneratedImage(image string) (string, error) {
	segments := strings.Split(g.testID, "_")
	if len(segments[0]) < 6 {
		return "", fmt.Errorf("%w: %q", ErrInvalidTestID, g.testID)
	}
	shard := segments[0]
	url := g.base + "/results/" + shard[0:2] + "/" + shard[2:4] + "/" + shard[4:6]
	for _, segment := range segments[1:] {
		url += "/" + segment
	}
	return url + "/" + g.underscorePrefix() + image + ".png", nil
}

// thumbName inserts "_thumb" before the extension ("shot.png" becomes
// "shot_thumb.png"), or appends it when the image name has no extension.
func thumbName(image string) string {
	dot := strings.LastIndex(image, ".")
	if dot < 0 {
		return image + "_thumb"
	}
	return image[:dot] + "_thumb" + image[dot:]
}
