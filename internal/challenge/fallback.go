package challenge

// fallbackOrder fixes the bucket order used for the union of all buckets.
var fallbackOrder = []Category{Gaming, Esports, Coding, Tech, Anime, Cyber, Retro, VR}

var fallbackTable = map[Category][]Challenge{
	Gaming: {
		{Activity: "Earn the platinum trophy in Elden Ring", Category: Gaming, Accessibility: 0.8, Price: 0.3, Participants: 1},
		{Activity: "Finish Dark Souls 3 without getting hit", Category: Gaming, Accessibility: 0.9, Price: 0.2, Participants: 1},
		{Activity: "Reach rank 1 in League of Legends", Category: Gaming, Accessibility: 0.85, Price: 0, Participants: 1},
		{Activity: "Speedrun Minecraft in under 15 minutes", Category: Gaming, Accessibility: 0.7, Price: 0.1, Participants: 1},
		{Activity: "Complete Cyberpunk 2077 with every achievement", Category: Gaming, Accessibility: 0.7, Price: 0.3, Participants: 1},
		{Activity: "Reach Immortal in Valorant", Category: Gaming, Accessibility: 0.85, Price: 0, Participants: 1},
		{Activity: "Beat Hollow Knight including every hard boss", Category: Gaming, Accessibility: 0.8, Price: 0.1, Participants: 1},
		{Activity: "Score 1000 eliminations in Fortnite", Category: Gaming, Accessibility: 0.6, Price: 0, Participants: 1},
	},
	Esports: {
		{Activity: "Enter a local esports tournament", Category: Esports, Accessibility: 0.5, Price: 0.2, Participants: 10},
		{Activity: "Stream for 8 hours straight", Category: Esports, Accessibility: 0.5, Price: 0.1, Participants: 1},
		{Activity: "Reach 10k followers on Twitch", Category: Esports, Accessibility: 0.8, Price: 0, Participants: 1},
		{Activity: "Write a complete speedrun guide", Category: Esports, Accessibility: 0.7, Price: 0, Participants: 1},
		{Activity: "Win a professional esports tournament", Category: Esports, Accessibility: 0.95, Price: 0.4, Participants: 50},
		{Activity: "Reach 100k subscribers on a gaming YouTube channel", Category: Esports, Accessibility: 0.9, Price: 0, Participants: 1},
		{Activity: "Go pro with an official team", Category: Esports, Accessibility: 0.92, Price: 0.3, Participants: 1},
		{Activity: "Cast a professional esports match", Category: Esports, Accessibility: 0.7, Price: 0.2, Participants: 1},
	},
	Coding: {
		{Activity: "Build a ChatGPT clone", Category: Coding, Accessibility: 0.8, Price: 0, Participants: 1},
		{Activity: "Contribute to the Linux kernel", Category: Coding, Accessibility: 0.9, Price: 0, Participants: 1},
		{Activity: "Win a major hackathon", Category: Coding, Accessibility: 0.7, Price: 0.1, Participants: 50},
		{Activity: "Ship a mobile app with 100k downloads", Category: Coding, Accessibility: 0.8, Price: 0.1, Participants: 1},
		{Activity: "Fix a critical bug in a popular GitHub project", Category: Coding, Accessibility: 0.6, Price: 0, Participants: 1},
		{Activity: "Design your own programming language", Category: Coding, Accessibility: 0.9, Price: 0, Participants: 1},
		{Activity: "Publish a Python library that goes viral", Category: Coding, Accessibility: 0.8, Price: 0, Participants: 1},
		{Activity: "Solve an advanced Capture The Flag", Category: Coding, Accessibility: 0.8, Price: 0, Participants: 1},
	},
	Tech: {
		{Activity: "Build a 4K gaming PC", Category: Tech, Accessibility: 0.6, Price: 0.7, Participants: 1},
		{Activity: "Overclock a GPU to beat a record", Category: Tech, Accessibility: 0.8, Price: 0.3, Participants: 1},
		{Activity: "Set up a complete home lab server", Category: Tech, Accessibility: 0.7, Price: 0.4, Participants: 1},
		{Activity: "Mod a retro gaming console", Category: Tech, Accessibility: 0.6, Price: 0.2, Participants: 1},
		{Activity: "Build a racing drone", Category: Tech, Accessibility: 0.75, Price: 0.5, Participants: 1},
		{Activity: "Flash and customize an Android ROM", Category: Tech, Accessibility: 0.7, Price: 0.1, Participants: 1},
		{Activity: "Install Arch Linux from scratch", Category: Tech, Accessibility: 0.8, Price: 0, Participants: 1},
		{Activity: "Configure a NAS with RAID 10", Category: Tech, Accessibility: 0.7, Price: 0.5, Participants: 1},
	},
	Anime: {
		{Activity: "Watch a full anime of 100+ episodes", Category: Anime, Accessibility: 0.4, Price: 0.1, Participants: 1},
		{Activity: "Watch every Studio Ghibli film", Category: Anime, Accessibility: 0.3, Price: 0.2, Participants: 1},
		{Activity: "Finish every episode of One Piece", Category: Anime, Accessibility: 0.6, Price: 0.1, Participants: 1},
		{Activity: "Read the complete Berserk manga", Category: Anime, Accessibility: 0.7, Price: 0.2, Participants: 1},
		{Activity: "Attend Japan Expo", Category: Anime, Accessibility: 0.3, Price: 0.3, Participants: 3},
		{Activity: "Cosplay a complex anime character", Category: Anime, Accessibility: 0.5, Price: 0.2, Participants: 1},
		{Activity: "Learn Japanese through anime", Category: Anime, Accessibility: 0.7, Price: 0, Participants: 1},
		{Activity: "Collect every volume of a manga series", Category: Anime, Accessibility: 0.5, Price: 0.3, Participants: 1},
	},
	Cyber: {
		{Activity: "Pass the CEH certification", Category: Cyber, Accessibility: 0.8, Price: 0.4, Participants: 1},
		{Activity: "Solve 100 HackTheBox challenges", Category: Cyber, Accessibility: 0.85, Price: 0, Participants: 1},
		{Activity: "Find a vulnerability in a bug bounty program", Category: Cyber, Accessibility: 0.7, Price: 0, Participants: 1},
		{Activity: "Write a worm to test your own network", Category: Cyber, Accessibility: 0.85, Price: 0, Participants: 1},
		{Activity: "Crack WPA2 on your own access point", Category: Cyber, Accessibility: 0.8, Price: 0, Participants: 1},
		{Activity: "Analyze malware in a sandbox", Category: Cyber, Accessibility: 0.8, Price: 0.1, Participants: 1},
		{Activity: "Pass the OSCP certification", Category: Cyber, Accessibility: 0.9, Price: 0.3, Participants: 1},
		{Activity: "Become a professional ethical hacker", Category: Cyber, Accessibility: 0.9, Price: 0.4, Participants: 1},
	},
	Retro: {
		{Activity: "Finish Super Metroid without items", Category: Retro, Accessibility: 0.8, Price: 0.1, Participants: 1},
		{Activity: "Beat Mega Man without taking damage", Category: Retro, Accessibility: 0.85, Price: 0.1, Participants: 1},
		{Activity: "Complete Castlevania on hard", Category: Retro, Accessibility: 0.8, Price: 0.1, Participants: 1},
		{Activity: "Speedrun Dragon's Lair", Category: Retro, Accessibility: 0.7, Price: 0.1, Participants: 1},
		{Activity: "Set a high score on a classic arcade cabinet", Category: Retro, Accessibility: 0.6, Price: 0.1, Participants: 1},
		{Activity: "Complete Contra without the cheat code", Category: Retro, Accessibility: 0.85, Price: 0.1, Participants: 1},
		{Activity: "Beat Battletoads all the way through", Category: Retro, Accessibility: 0.9, Price: 0.1, Participants: 1},
		{Activity: "Play and finish every NES Zelda", Category: Retro, Accessibility: 0.7, Price: 0.2, Participants: 1},
	},
	VR: {
		{Activity: "Complete Half-Life: Alyx", Category: VR, Accessibility: 0.7, Price: 0.6, Participants: 1},
		{Activity: "Reach the global top 100 in Beat Saber Expert+", Category: VR, Accessibility: 0.8, Price: 0.5, Participants: 1},
		{Activity: "Finish Resident Evil 4 VR", Category: VR, Accessibility: 0.7, Price: 0.6, Participants: 1},
		{Activity: "Play 10 hours of VR without motion sickness", Category: VR, Accessibility: 0.5, Price: 0.5, Participants: 1},
		{Activity: "Build a premium VR setup", Category: VR, Accessibility: 0.7, Price: 0.8, Participants: 1},
		{Activity: "Stream hardcore VR sessions", Category: VR, Accessibility: 0.6, Price: 0.5, Participants: 1},
		{Activity: "Develop your own VR game", Category: VR, Accessibility: 0.8, Price: 0.5, Participants: 1},
		{Activity: "Enter a VR esports tournament", Category: VR, Accessibility: 0.6, Price: 0.3, Participants: 5},
	},
}

// Fallbacks returns the local challenges for a category, or nil when the
// category has no local bucket. The result must not be modified.
func Fallbacks(c Category) []Challenge {
	return fallbackTable[c]
}

// AllFallbacks returns every local challenge, bucket by bucket.
func AllFallbacks() []Challenge {
	var out []Challenge
	for _, c := range fallbackOrder {
		out = append(out, fallbackTable[c]...)
	}
	return out
}
