package scoring

import (
	"testing"
	"time"

	"github.com/fomoscore/backend/internal/payload"
	"github.com/smartystreets/goconvey/convey"
)

func TestEvaluate(t *testing.T) {
	convey.Convey("Given the full evaluation pipeline", t, func() {
		now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

		convey.Convey("When no source data is present", func() {
			eval := Evaluate(Input{Now: now})

			convey.Convey("Then all categories floor and the total is 45", func() {
				convey.So(eval.Raw, convey.ShouldResemble, SubScores{})
				convey.So(eval.Total, convey.ShouldEqual, 45)
			})

			convey.Convey("And no badges are awarded, the default title applies", func() {
				convey.So(eval.Badges, convey.ShouldBeEmpty)
				convey.So(eval.Title, convey.ShouldEqual, DefaultTitle)
			})
		})

		convey.Convey("When only a wallet is present", func() {
			wallet := payload.Wallet{
				NativeBalance: 1.5,
				ActiveChains:  []string{"eth", "polygon"},
				TokenBalances: []string{"A", "B", "C"},
				DefiPositions: []string{"aave"},
				NFTs:          []string{"n1", "n2", "n3", "n4"},
			}
			eval := Evaluate(Input{Wallet: &wallet, Now: now})

			convey.Convey("Then crypto and NFT score from the wallet", func() {
				// chains 10 + native 15 + tokens 6 + defi 5
				convey.So(eval.Raw.Crypto, convey.ShouldEqual, 36)
				convey.So(eval.Raw.NFT, convey.ShouldEqual, 20)
			})

			convey.Convey("And the untouched categories floor", func() {
				convey.So(eval.Scores.Social, convey.ShouldEqual, 10)
				convey.So(eval.Scores.Community, convey.ShouldEqual, 10)
				convey.So(eval.Scores.Telegram, convey.ShouldEqual, 5)
				convey.So(eval.Total, convey.ShouldEqual, 10+36+20+10+5)
			})

			convey.Convey("And wallet badges are evaluated", func() {
				convey.So(eval.Badges["Chain Explorer"].Level, convey.ShouldEqual, LevelSilver)
				convey.So(eval.Badges["NFT Collector"].Level, convey.ShouldEqual, LevelSilver)
				_, hasTwitterBadge := eval.Badges["Verified Visionary"]
				convey.So(hasTwitterBadge, convey.ShouldBeFalse)
			})
		})

		convey.Convey("When the vault was queried but returned nothing", func() {
			eval := Evaluate(Input{TelegramPresent: true, Now: now})

			convey.Convey("Then telegram categories still floor", func() {
				convey.So(eval.Raw.Community, convey.ShouldEqual, 0)
				convey.So(eval.Scores.Community, convey.ShouldEqual, 10)
				convey.So(eval.Scores.Telegram, convey.ShouldEqual, 5)
			})
		})

		convey.Convey("When a twitter account crosses a score cap", func() {
			user := payload.TwitterUser{Followers: 2_000_000}
			eval := Evaluate(Input{Twitter: &user, Now: now})

			convey.Convey("Then the raw value exceeds the cap but the stored value is clamped", func() {
				convey.So(eval.Raw.Social, convey.ShouldEqual, 2_000)
				convey.So(eval.Scores.Social, convey.ShouldEqual, 50)
			})

			convey.Convey("And the follower badge lands at silver", func() {
				convey.So(eval.Badges["Influence Investor"].Level, convey.ShouldEqual, LevelSilver)
				convey.So(eval.Badges["Influence Investor"].Value, convey.ShouldEqual, 2_000_000)
			})
		})
	})
}
