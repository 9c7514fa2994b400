package logx

import (
	"regexp"
)

type SensitiveDataMaskerInterface interface {
	Mask(input []byte) []byte
}

//nolint:gochecknoglobals
var sensitiveDataPatterns = []*regexp.Regexp{
	// JSON fields.
	regexp.MustCompile("(?s)(Authorization: Bearer ).+?(\r)"),
	regexp.MustCompile("(?s)(Cookie: ).+?(\r)"),
	regexp.MustCompile(`(/api/webhooks/\d+/)[\w-]+()`),
	regexp.MustCompile(`("[Pp]assword":\s?")(?:[^"\\]|\\.)*(")`),
	regexp.MustCompile(`("accessToken":\s?")(?:[^"\\]|\\.)*(")`),
	regexp.MustCompile(`("refreshToken":\s?")(?:[^"\\]|\\.)*(")`),
	regexp.MustCompile(`("firstName":\s?")(?:[^"\\]|\\.)*(")`),
	regexp.MustCompile(`("middleName":\s?")(?:[^"\\]|\\.)*(")`),
	regexp.MustCompile(`("lastName":\s?")(?:[^"\\]|\\.)*(")`),
	regexp.MustCompile(`("email":\s?")(?:[^"\\]|\\.)*(")`),
	regexp.MustCompile(`("amazon":\s?")(?:[^"\\]|\\.)*(")`),
	regexp.MustCompile(`("seller":\s?")(?:[^"\\]|\\.)*(")`),
	regexp.MustCompile(`("value":\s?")(?:[^"\\]|\\.)*(")`),
}

type SensitiveDataMasker struct{}

func NewSensitiveDataMasker() SensitiveDataMasker {
	return SensitiveDataMasker{}
}

func (s SensitiveDataMasker) Mask(input []byte) []byte {
	for _, pattern := range sensitiveDataPatterns {
		input = pattern.ReplaceAll(input, []byte("${1}[MASKED]${2}"))
	}

	return input
}
