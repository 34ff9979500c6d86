package scoring

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestAggregate(t *testing.T) {
	convey.Convey("Given the floor-and-cap aggregator", t, func() {
		convey.Convey("When every raw sub-score is zero", func() {
			scores, total := Aggregate(SubScores{})

			convey.Convey("Then every category reads its floor", func() {
				convey.So(scores.Social, convey.ShouldEqual, 10)
				convey.So(scores.Crypto, convey.ShouldEqual, 15)
				convey.So(scores.NFT, convey.ShouldEqual, 5)
				convey.So(scores.Community, convey.ShouldEqual, 10)
				convey.So(scores.Telegram, convey.ShouldEqual, 5)
			})

			convey.Convey("And the total is the sum of the floors", func() {
				convey.So(total, convey.ShouldEqual, 45)
			})
		})

		convey.Convey("When raw values exceed every cap", func() {
			scores, total := Aggregate(SubScores{
				Social:    999,
				Crypto:    999,
				NFT:       999,
				Community: 999,
				Telegram:  999,
			})

			convey.Convey("Then each category is clamped to its cap", func() {
				convey.So(scores.Social, convey.ShouldEqual, 50)
				convey.So(scores.Crypto, convey.ShouldEqual, 40)
				convey.So(scores.NFT, convey.ShouldEqual, 30)
				convey.So(scores.Community, convey.ShouldEqual, 20)
				convey.So(scores.Telegram, convey.ShouldEqual, 15)
			})

			convey.Convey("And the total is the maximum", func() {
				convey.So(total, convey.ShouldEqual, float64(MaxTotalScore))
			})
		})

		convey.Convey("When raw values sit between floor and cap", func() {
			scores, total := Aggregate(SubScores{
				Social:    23.5,
				Crypto:    16,
				NFT:       7,
				Community: 12,
				Telegram:  9,
			})

			convey.Convey("Then they pass through unchanged", func() {
				convey.So(scores.Social, convey.ShouldEqual, 23.5)
				convey.So(scores.Crypto, convey.ShouldEqual, 16)
				convey.So(scores.NFT, convey.ShouldEqual, 7)
				convey.So(scores.Community, convey.ShouldEqual, 12)
				convey.So(scores.Telegram, convey.ShouldEqual, 9)
				convey.So(total, convey.ShouldEqual, 67.5)
			})
		})

		convey.Convey("When a raw value is below its floor but nonzero", func() {
			scores, _ := Aggregate(SubScores{Social: 0.5})

			convey.Convey("Then it is kept, not floored", func() {
				convey.So(scores.Social, convey.ShouldEqual, 0.5)
			})
		})
	})
}
