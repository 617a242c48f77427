// Copyright 2026 pagegauge project authors. All rights reserved.
// Use of this source code is governed by Apache 2 LICENSE that can be found in the LICENSE file.

package urlgen

// standardGenerator emits plain query-string URLs,
// e.g. "/result.php?test=210101_AB1234_1&run=2&cached=1".
type standardGenerator struct {
	runContext
}

func (g *standardGenerator) ResultPage(page, extraParams string) string {
	url := g.base + "/" + page + ".php?" + g.commonParams()
	if extraParams != "" {
		url += "&" + extraParams
	}
	return url
}

func (g *standardGenerator) ResultSummary(extraParams string) string {
	url := g.base + "/results.php?test=" + g.testID
	if extraParams != "" {
		url += "&" + extraParams
	}
	return url
}

func (g *standardGenerator) Thumbnail(image string) string {
	return g.base + "/thumbnail.php?" + g.commonParams() + "&file=" + g.underscorePrefix() + image
}

func (g *standardGenerator) GeneratedImage(image string) (string, error) {
	return g.base + "/" + image + ".php?" + g.commonParams(), nil
}
