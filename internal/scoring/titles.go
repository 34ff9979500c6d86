package scoring

// DefaultTitle is returned when no requirement set is fully satisfied.
const DefaultTitle = "ALL ROUNDOOR"

// TitleRule names a title and the badges that must all be present (level
// irrelevant) for it to apply.
type TitleRule struct {
	Title    string
	Requires []string
}

// TitleRules is evaluated first-match in declaration order; the order is
// semantically significant and must not be re-sorted.
var TitleRules = []TitleRule{
	{Title: "Crypto Connoisseur", Requires: []string{"Crypto Communicator", "Social Connector", "Liquidity Laureate", "Telegram Titan"}},
	{Title: "Blockchain Baron", Requires: []string{"DeFi Master", "Liquidity Laureate", "Governance Griot", "Staking Veteran", "Gas Gladiator"}},
	{Title: "Digital Dynamo", Requires: []string{"Twitter Veteran", "Fast Grower", "Engagement Star", "Verified Visionary", "Degen Dualist"}},
	{Title: "DeFi Dynamo", Requires: []string{"DeFi Master", "Airdrop Veteran", "Dapp Diplomat"}},
	{Title: "NFT Aficionado", Requires: []string{"NFT Networker", "NFT Whale"}},
	{Title: "Social Savant", Requires: []string{"Crypto Communicator", "Social Connector", "Twitter Veteran", "Engagement Economist", "Retweet Riches"}},
	{Title: "Protocol Pioneer", Requires: []string{"Chain Explorer", "Cross-Chain Crusader", "DeFi Drifter"}},
	{Title: "Token Titan", Requires: []string{"Influence Investor", "Meme Miner", "Tweet Trader"}},
	{Title: "Chain Champion", Requires: []string{"Bridge Blazer", "Viral Validator", "Social HODLer"}},
	{Title: "Governance Guru", Requires: []string{"DAO Diplomat", "Community Leader", "Governance Griot"}},
}

// ResolveTitle returns the first title whose required badges are all present
// in the set, or DefaultTitle when none match.
func ResolveTitle(badges BadgeSet) string {
	for _, rule := range TitleRules {
		if hasAll(badges, rule.Requires) {
			return rule.Title
		}
	}
	return DefaultTitle
}

func hasAll(badges BadgeSet, names []string) bool {
	for _, name := range names {
		if _, ok := badges[name]; !ok {
			return false
		}
	}
	return true
}
