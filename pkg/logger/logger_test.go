package logger_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/venxlabs/venx/pkg/logger"
)

func TestLogger(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Logger Suite")
}

var _ = Describe("Logger", func() {
	Describe("New", func() {
		It("creates a default text logger", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf))
			l.Info("hello", "key", "value")

			output := buf.String()
			Expect(output).To(ContainSubstring("hello"))
			Expect(output).To(ContainSubstring("key"))
			Expect(output).To(ContainSubstring("value"))
		})

		It("respects debug level", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithDebug(true))
			l.Debug("debug msg")

			Expect(buf.String()).To(ContainSubstring("debug msg"))
		})

		It("suppresses debug messages at info level", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf))
			l.Debug("debug msg")

			Expect(buf.String()).To(BeEmpty())
		})

		It("builds a pretty logger gated by a debug flag", func() {
			var buf bytes.Buffer
			for _, debug := range []bool{false, true} {
				l := logger.New(logger.WithWriter(&buf),
					logger.WithPretty(true), logger.WithDebug(debug))
				l.Debug("verbose detail")
			}

			// Only the debug=true pass may emit the record.
			Expect(strings.Count(buf.String(), "verbose detail")).To(Equal(1))
		})

		It("emits valid JSON with WithJSON", func() {
			var buf bytes.Buffer
			l := logger.New(logger.WithWriter(&buf), logger.WithJSON(true))
			l.Info("structured", "provider", "venice")

			line := strings.TrimSpace(buf.String())
			var record map[string]any
			Expect(json.Unmarshal([]byte(line), &record)).To(Succeed())
			Expect(record["msg"]).To(Equal("structured"))
			Expect(record["provider"]).To(Equal("venice"))
		})
	})

	Describe("Multi", func() {
		It("fans out records to all loggers", func() {
			var a, b bytes.Buffer
			l := logger.Multi(
				logger.New(logger.WithWriter(&a)),
				logger.New(logger.WithWriter(&b), logger.WithJSON(true)),
			)
			l.Info("fanout")

			Expect(a.String()).To(ContainSubstring("fanout"))
			Expect(b.String()).To(ContainSubstring("fanout"))
		})
	})
})
