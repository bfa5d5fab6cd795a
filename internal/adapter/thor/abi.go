package thor

// registryABI is the slice of the VeCare contract interface this backend
// actually touches. Campaign ids are recovered from the CampaignCreated
// event by selector match, never by position.
const registryABI = `[
	{"type":"function","name":"createCampaign","stateMutability":"nonpayable","inputs":[
		{"name":"title","type":"string"},
		{"name":"description","type":"string"},
		{"name":"medicalDocumentHash","type":"string"},
		{"name":"goalAmount","type":"uint256"},
		{"name":"durationDays","type":"uint256"}],
		"outputs":[{"name":"campaignId","type":"uint256"}]},
	{"type":"function","name":"verifyCampaign","stateMutability":"nonpayable","inputs":[
		{"name":"campaignId","type":"uint256"},
		{"name":"verified","type":"bool"}],
		"outputs":[]},
	{"type":"function","name":"getCampaign","stateMutability":"view","inputs":[
		{"name":"campaignId","type":"uint256"}],
		"outputs":[{"name":"campaign","type":"tuple","components":[
			{"name":"id","type":"uint256"},
			{"name":"creator","type":"address"},
			{"name":"title","type":"string"},
			{"name":"description","type":"string"},
			{"name":"medicalDocumentHash","type":"string"},
			{"name":"goalAmount","type":"uint256"},
			{"name":"raisedAmount","type":"uint256"},
			{"name":"deadline","type":"uint256"},
			{"name":"isActive","type":"bool"},
			{"name":"isVerified","type":"bool"},
			{"name":"fundsWithdrawn","type":"bool"},
			{"name":"createdAt","type":"uint256"},
			{"name":"donorCount","type":"uint256"}]}]},
	{"type":"function","name":"campaignCounter","stateMutability":"view","inputs":[],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"getCreatorProfile","stateMutability":"view","inputs":[
		{"name":"creator","type":"address"}],
		"outputs":[{"name":"profile","type":"tuple","components":[
			{"name":"totalCampaigns","type":"uint256"},
			{"name":"successfulCampaigns","type":"uint256"},
			{"name":"totalRaised","type":"uint256"},
			{"name":"trustScore","type":"uint256"},
			{"name":"lastUpdateTimestamp","type":"uint256"},
			{"name":"exists","type":"bool"}]}]},
	{"type":"function","name":"getDonation","stateMutability":"view","inputs":[
		{"name":"campaignId","type":"uint256"},
		{"name":"donor","type":"address"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"isGoalReached","stateMutability":"view","inputs":[
		{"name":"campaignId","type":"uint256"}],
		"outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"getCampaignUpdateCount","stateMutability":"view","inputs":[
		{"name":"campaignId","type":"uint256"}],
		"outputs":[{"name":"","type":"uint256"}]},
	{"type":"event","name":"CampaignCreated","inputs":[
		{"name":"campaignId","type":"uint256","indexed":true},
		{"name":"creator","type":"address","indexed":true},
		{"name":"title","type":"string","indexed":false},
		{"name":"goalAmount","type":"uint256","indexed":false},
		{"name":"deadline","type":"uint256","indexed":false}]},
	{"type":"event","name":"CampaignVerified","inputs":[
		{"name":"campaignId","type":"uint256","indexed":true},
		{"name":"verified","type":"bool","indexed":false}]}
]`
