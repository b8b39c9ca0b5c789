package catalog

import "github.com/martinmr/iching/internal/domain"

// Trigram patterns, bit 0 being the bottom line.
const (
	earth    domain.Trigram = 0b000
	thunder  domain.Trigram = 0b001
	water    domain.Trigram = 0b010
	lake     domain.Trigram = 0b011
	mountain domain.Trigram = 0b100
	fire     domain.Trigram = 0b101
	wind     domain.Trigram = 0b110
	heaven   domain.Trigram = 0b111
)

func builtinTrigrams() []domain.TrigramInfo {
	return []domain.TrigramInfo{
		{Trigram: heaven, Name: "Qián", Chinese: "乾", Symbol: "☰", Image: "Heaven", Attribute: "creative, strong"},
		{Trigram: lake, Name: "Duì", Chinese: "兌", Symbol: "☱", Image: "Lake", Attribute: "joyous"},
		{Trigram: fire, Name: "Lí", Chinese: "離", Symbol: "☲", Image: "Fire", Attribute: "clinging, light-giving"},
		{Trigram: thunder, Name: "Zhèn", Chinese: "震", Symbol: "☳", Image: "Thunder", Attribute: "arousing, inciting movement"},
		{Trigram: wind, Name: "Xùn", Chinese: "巽", Symbol: "☴", Image: "Wind", Attribute: "gentle, penetrating"},
		{Trigram: water, Name: "Kǎn", Chinese: "坎", Symbol: "☵", Image: "Water", Attribute: "abysmal, dangerous"},
		{Trigram: mountain, Name: "Gèn", Chinese: "艮", Symbol: "☶", Image: "Mountain", Attribute: "keeping still, resting"},
		{Trigram: earth, Name: "Kūn", Chinese: "坤", Symbol: "☷", Image: "Earth", Attribute: "receptive, yielding"},
	}
}

type row struct {
	upper, lower domain.Trigram
	name         string
	english      string
}

// kingWen lists the hexagrams in King Wen order.
var kingWen = [domain.PatternCount]row{
	{heaven, heaven, "Qián", "The Creative"},
	{earth, earth, "Kūn", "The Receptive"},
	{water, thunder, "Zhūn", "Difficulty at the Beginning"},
	{mountain, water, "Méng", "Youthful Folly"},
	{water, heaven, "Xū", "Waiting"},
	{heaven, water, "Sòng", "Conflict"},
	{earth, water, "Shī", "The Army"},
	{water, earth, "Bǐ", "Holding Together"},
	{wind, heaven, "Xiǎo Chù", "The Taming Power of the Small"},
	{heaven, lake, "Lǚ", "Treading"},
	{earth, heaven, "Tài", "Peace"},
	{heaven, earth, "Pǐ", "Standstill"},
	{heaven, fire, "Tóng Rén", "Fellowship with Men"},
	{fire, heaven, "Dà Yǒu", "Possession in Great Measure"},
	{earth, mountain, "Qiān", "Modesty"},
	{thunder, earth, "Yù", "Enthusiasm"},
	{lake, thunder, "Suí", "Following"},
	{mountain, wind, "Gǔ", "Work on What Has Been Spoiled"},
	{earth, lake, "Lín", "Approach"},
	{wind, earth, "Guān", "Contemplation"},
	{fire, thunder, "Shì Kè", "Biting Through"},
	{mountain, fire, "Bì", "Grace"},
	{mountain, earth, "Bō", "Splitting Apart"},
	{earth, thunder, "Fù", "Return"},
	{heaven, thunder, "Wú Wàng", "Innocence"},
	{mountain, heaven, "Dà Chù", "The Taming Power of the Great"},
	{mountain, thunder, "Yí", "The Corners of the Mouth"},
	{lake, wind, "Dà Guò", "Preponderance of the Great"},
	{water, water, "Kǎn", "The Abysmal"},
	{fire, fire, "Lí", "The Clinging"},
	{lake, mountain, "Xián", "Influence"},
	{thunder, wind, "Héng", "Duration"},
	{heaven, mountain, "Dùn", "Retreat"},
	{thunder, heaven, "Dà Zhuàng", "The Power of the Great"},
	{fire, earth, "Jìn", "Progress"},
	{earth, fire, "Míng Yí", "Darkening of the Light"},
	{wind, fire, "Jiā Rén", "The Family"},
	{fire, lake, "Kuí", "Opposition"},
	{water, mountain, "Jiǎn", "Obstruction"},
	{thunder, water, "Xiè", "Deliverance"},
	{mountain, lake, "Sǔn", "Decrease"},
	{wind, thunder, "Yì", "Increase"},
	{lake, heaven, "Guài", "Break-through"},
	{heaven, wind, "Gòu", "Coming to Meet"},
	{lake, earth, "Cuì", "Gathering Together"},
	{earth, wind, "Shēng", "Pushing Upward"},
	{lake, water, "Kùn", "Oppression"},
	{water, wind, "Jǐng", "The Well"},
	{lake, fire, "Gé", "Revolution"},
	{fire, wind, "Dǐng", "The Cauldron"},
	{thunder, thunder, "Zhèn", "The Arousing"},
	{mountain, mountain, "Gèn", "Keeping Still"},
	{wind, mountain, "Jiàn", "Development"},
	{thunder, lake, "Guī Mèi", "The Marrying Maiden"},
	{thunder, fire, "Fēng", "Abundance"},
	{fire, mountain, "Lǚ", "The Wanderer"},
	{wind, wind, "Xùn", "The Gentle"},
	{lake, lake, "Duì", "The Joyous"},
	{wind, water, "Huàn", "Dispersion"},
	{water, lake, "Jié", "Limitation"},
	{wind, lake, "Zhōng Fú", "Inner Truth"},
	{thunder, mountain, "Xiǎo Guò", "Preponderance of the Small"},
	{water, fire, "Jì Jì", "After Completion"},
	{fire, water, "Wèi Jì", "Before Completion"},
}

func builtinEntries() []domain.Entry {
	out := make([]domain.Entry, 0, len(kingWen))
	for i, r := range kingWen {
		out = append(out, domain.Entry{
			Number:  i + 1,
			Pattern: domain.FromTrigrams(r.lower, r.upper),
			Name:    r.name,
			English: r.english,
		})
	}
	return out
}
