package usecase

import (
	"regexp"
	"strings"

	"github.com/avc-dev/urlshort/internal/model"
	whatwg "github.com/nlnwa/whatwg-url/url"
)

var schemePattern = regexp.MustCompile(`(?i)^https?://`)

// urlParser разбирает URL по правилам WHATWG, как это делает браузер
var urlParser = whatwg.NewParser()

// NormalizeURL приводит URL к каноническому виду.
// Без схемы http(s):// добавляется https://, дальше URL разбирается и сериализуется по WHATWG:
// хост в нижнем регистре и punycode, сегменты "." и ".." схлопываются, порт по умолчанию убирается.
func NormalizeURL(rawURL string) (model.URL, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", ErrEmptyURL
	}

	if !schemePattern.MatchString(rawURL) {
		rawURL = "https://" + rawURL
	}

	parsedURL, err := urlParser.Parse(rawURL)
	if err != nil || parsedURL.Hostname() == "" {
		return "", ErrInvalidURL
	}

	return model.URL(parsedURL.Href(false)), nil
}
