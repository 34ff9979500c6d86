package scoring

import (
	"testing"

	"github.com/fomoscore/backend/internal/payload"
	"github.com/smartystreets/goconvey/convey"
)

func TestKeywordScan(t *testing.T) {
	convey.Convey("Given a keyword accumulator", t, func() {
		convey.Convey("When scanning text with whole-word keyword matches", func() {
			m := NewKeywordMatches()
			m.ScanText("The AI protocol is live")

			convey.Convey("Then each keyword counts once", func() {
				convey.So(m.Keywords["ai"], convey.ShouldEqual, 1)
				convey.So(m.Keywords["protocol"], convey.ShouldEqual, 1)
				convey.So(m.Keywords["cluster"], convey.ShouldEqual, 0)
				convey.So(m.TotalCount, convey.ShouldEqual, 2)
			})
		})

		convey.Convey("When a keyword appears only inside another word", func() {
			m := NewKeywordMatches()
			m.ScanText("heavy rain and aircraft maintenance")

			convey.Convey("Then it does not match", func() {
				convey.So(m.Keywords["ai"], convey.ShouldEqual, 0)
				convey.So(m.TotalCount, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When the keyword is written as a hashtag", func() {
			m := NewKeywordMatches()
			m.ScanText("join #protocol today")

			convey.Convey("Then the leading hash counts as a boundary", func() {
				convey.So(m.Keywords["protocol"], convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When a keyword repeats inside one blob", func() {
			m := NewKeywordMatches()
			m.ScanText("ai ai ai everywhere")

			convey.Convey("Then it still counts once per blob", func() {
				convey.So(m.Keywords["ai"], convey.ShouldEqual, 1)
				convey.So(m.TotalCount, convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When one keyword is embedded and later standalone", func() {
			m := NewKeywordMatches()
			m.ScanText("aircraft and then ai")

			convey.Convey("Then the standalone occurrence is found", func() {
				convey.So(m.Keywords["ai"], convey.ShouldEqual, 1)
			})
		})

		convey.Convey("When scanning across several blobs", func() {
			groups := []payload.TelegramGroup{
				{Name: "Cluster fans", Description: "all about cluster"},
			}
			messages := []payload.TelegramMessage{
				{TextFields: []string{"new protocol dropped"}},
				{TextFields: []string{"cluster again"}},
			}
			m := ScanTelegram(groups, messages)

			convey.Convey("Then counts accumulate per blob", func() {
				convey.So(m.Keywords["cluster"], convey.ShouldEqual, 2)
				convey.So(m.Keywords["protocol"], convey.ShouldEqual, 1)
				convey.So(m.TotalCount, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When scanning empty text", func() {
			m := NewKeywordMatches()
			m.ScanText("")

			convey.Convey("Then nothing changes", func() {
				convey.So(m.TotalCount, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("Then matching is case insensitive", func() {
			m := NewKeywordMatches()
			m.ScanText("PROTOCOL and Ai and CLUSTER")
			convey.So(m.TotalCount, convey.ShouldEqual, 3)
		})
	})
}
