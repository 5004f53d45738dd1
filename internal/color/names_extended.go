package color

// extendedTable is the extended color dictionary, modelled on the common
// color-survey vocabularies. Names may carry spaces; lookup normalization
// makes "Burnt Orange", "burnt-orange", and "burntorange" equivalent. Where
// a name also exists in the standard CSS table the extended value wins, so
// this table deliberately avoids redefining bare CSS keywords.
var extendedTable = []namedColor{
	{"acid green", RGB{0x8F, 0xFE, 0x09}},
	{"algae", RGB{0x54, 0xAC, 0x68}},
	{"almond", RGB{0xEF, 0xDE, 0xCD}},
	{"amber", RGB{0xFF, 0xBF, 0x00}},
	{"amethyst", RGB{0x9B, 0x5F, 0xC0}},
	{"apple green", RGB{0x76, 0xCD, 0x26}},
	{"apricot", RGB{0xFF, 0xB1, 0x6D}},
	{"aqua blue", RGB{0x02, 0xD8, 0xE9}},
	{"aqua green", RGB{0x12, 0xE1, 0x93}},
	{"army green", RGB{0x4B, 0x5D, 0x16}},
	{"asparagus", RGB{0x77, 0xAB, 0x56}},
	{"aubergine", RGB{0x3D, 0x0C, 0x34}},
	{"avocado", RGB{0x90, 0xB1, 0x34}},
	{"baby blue", RGB{0xA2, 0xCF, 0xFE}},
	{"baby pink", RGB{0xFF, 0xB7, 0xCE}},
	{"banana", RGB{0xFF, 0xFF, 0x7E}},
	{"barney purple", RGB{0xA0, 0x02, 0x5C}},
	{"battleship gray", RGB{0x6B, 0x7C, 0x85}},
	{"blood orange", RGB{0xFE, 0x4B, 0x03}},
	{"blood red", RGB{0x98, 0x00, 0x02}},
	{"blue gray", RGB{0x60, 0x7C, 0x8E}},
	{"blue green", RGB{0x13, 0x7E, 0x6D}},
	{"blueberry", RGB{0x46, 0x41, 0x96}},
	{"blush", RGB{0xF2, 0x9E, 0x8E}},
	{"bordeaux", RGB{0x7B, 0x00, 0x2C}},
	{"bottle green", RGB{0x04, 0x4A, 0x05}},
	{"brick", RGB{0xA0, 0x36, 0x23}},
	{"brick red", RGB{0x8F, 0x14, 0x02}},
	{"bright blue", RGB{0x01, 0x65, 0xFC}},
	{"bright cyan", RGB{0x41, 0xFD, 0xFE}},
	{"bright green", RGB{0x01, 0xFF, 0x07}},
	{"bright magenta", RGB{0xFF, 0x08, 0xE8}},
	{"bright orange", RGB{0xFF, 0x5B, 0x00}},
	{"bright pink", RGB{0xFE, 0x01, 0xB1}},
	{"bright purple", RGB{0xBE, 0x03, 0xFD}},
	{"bright red", RGB{0xFF, 0x00, 0x0D}},
	{"bright teal", RGB{0x01, 0xF9, 0xC6}},
	{"bright yellow", RGB{0xFF, 0xFD, 0x01}},
	{"bronze", RGB{0xA8, 0x7D, 0x00}},
	{"bubblegum", RGB{0xFF, 0x6C, 0xB5}},
	{"burgundy", RGB{0x61, 0x00, 0x23}},
	{"burnt orange", RGB{0xC0, 0x4E, 0x01}},
	{"burnt sienna", RGB{0xB0, 0x4E, 0x0F}},
	{"burnt umber", RGB{0xA0, 0x45, 0x0E}},
	{"butter", RGB{0xFF, 0xFF, 0x81}},
	{"butterscotch", RGB{0xFD, 0xB1, 0x47}},
	{"cadet gray", RGB{0x91, 0xA3, 0xB0}},
	{"camel", RGB{0xC6, 0x9F, 0x59}},
	{"camouflage green", RGB{0x4B, 0x64, 0x33}},
	{"canary yellow", RGB{0xFF, 0xFE, 0x40}},
	{"candy pink", RGB{0xFF, 0x63, 0xE9}},
	{"caramel", RGB{0xAF, 0x6F, 0x09}},
	{"carmine", RGB{0x9D, 0x02, 0x16}},
	{"carnation", RGB{0xFD, 0x79, 0x8F}},
	{"celadon", RGB{0xBE, 0xFD, 0xB7}},
	{"celery", RGB{0xC1, 0xFD, 0x95}},
	{"cerise", RGB{0xDE, 0x0C, 0x62}},
	{"cerulean", RGB{0x04, 0x85, 0xD1}},
	{"champagne", RGB{0xF7, 0xE7, 0xCE}},
	{"charcoal", RGB{0x34, 0x3D, 0x46}},
	{"cherry", RGB{0xCF, 0x02, 0x34}},
	{"chestnut", RGB{0x74, 0x26, 0x02}},
	{"cinnamon", RGB{0xAC, 0x4F, 0x06}},
	{"claret", RGB{0x68, 0x01, 0x18}},
	{"clay", RGB{0xB6, 0x6A, 0x50}},
	{"cobalt", RGB{0x1E, 0x48, 0x8F}},
	{"cobalt blue", RGB{0x03, 0x0A, 0xA7}},
	{"cocoa", RGB{0x87, 0x5F, 0x42}},
	{"coffee", RGB{0xA6, 0x81, 0x4C}},
	{"cool gray", RGB{0x95, 0xA3, 0xA6}},
	{"copper", RGB{0xB6, 0x63, 0x25}},
	{"coral pink", RGB{0xFF, 0x61, 0x63}},
	{"cornflower", RGB{0x6A, 0x79, 0xF7}},
	{"cranberry", RGB{0x9E, 0x00, 0x3A}},
	{"cream", RGB{0xFF, 0xFF, 0xC2}},
	{"custard", RGB{0xFF, 0xFD, 0x78}},
	{"dandelion", RGB{0xFE, 0xDF, 0x08}},
	{"dark aqua", RGB{0x05, 0x69, 0x6B}},
	{"dark coral", RGB{0xCF, 0x52, 0x4E}},
	{"dark cream", RGB{0xFF, 0xF3, 0x9A}},
	{"dark forest green", RGB{0x00, 0x2D, 0x04}},
	{"dark gold", RGB{0xB5, 0x93, 0x10}},
	{"dark indigo", RGB{0x1F, 0x0A, 0x54}},
	{"dark lavender", RGB{0x85, 0x67, 0xB5}},
	{"dark lime", RGB{0x84, 0xB7, 0x01}},
	{"dark maroon", RGB{0x3C, 0x00, 0x08}},
	{"dark mauve", RGB{0x87, 0x4C, 0x62}},
	{"dark mint", RGB{0x48, 0xC0, 0x72}},
	{"dark navy", RGB{0x00, 0x04, 0x35}},
	{"dark peach", RGB{0xDE, 0x7E, 0x5D}},
	{"dark periwinkle", RGB{0x66, 0x5F, 0xD1}},
	{"dark pink", RGB{0xCB, 0x41, 0x6B}},
	{"dark plum", RGB{0x3F, 0x01, 0x2C}},
	{"dark rose", RGB{0xB5, 0x48, 0x5D}},
	{"dark sand", RGB{0xA8, 0x85, 0x4B}},
	{"dark sky blue", RGB{0x44, 0x8E, 0xE4}},
	{"dark tan", RGB{0xAF, 0x88, 0x4A}},
	{"dark teal", RGB{0x01, 0x4D, 0x4E}},
	{"dark yellow", RGB{0xD5, 0xB6, 0x0A}},
	{"deep blue", RGB{0x04, 0x02, 0x73}},
	{"deep green", RGB{0x02, 0x59, 0x0C}},
	{"deep lavender", RGB{0x8D, 0x5E, 0xB7}},
	{"deep orange", RGB{0xDC, 0x4D, 0x01}},
	{"deep purple", RGB{0x36, 0x01, 0x3F}},
	{"deep red", RGB{0x9A, 0x02, 0x00}},
	{"deep rose", RGB{0xC7, 0x47, 0x67}},
	{"deep teal", RGB{0x00, 0x55, 0x5A}},
	{"deep violet", RGB{0x49, 0x06, 0x48}},
	{"denim", RGB{0x3B, 0x63, 0x8C}},
	{"desert", RGB{0xCC, 0xAD, 0x60}},
	{"dirty orange", RGB{0xC8, 0x76, 0x06}},
	{"dirty yellow", RGB{0xCD, 0xC5, 0x0A}},
	{"dusk blue", RGB{0x26, 0x53, 0x8D}},
	{"dusty blue", RGB{0x5A, 0x86, 0xAD}},
	{"dusty pink", RGB{0xD5, 0x86, 0x9D}},
	{"dusty purple", RGB{0x82, 0x5F, 0x87}},
	{"dusty rose", RGB{0xC0, 0x73, 0x7A}},
	{"earth", RGB{0xA2, 0x65, 0x3E}},
	{"ecru", RGB{0xFE, 0xFF, 0xCA}},
	{"eggplant", RGB{0x38, 0x02, 0x35}},
	{"eggshell", RGB{0xFF, 0xFF, 0xD4}},
	{"electric blue", RGB{0x06, 0x52, 0xFF}},
	{"electric green", RGB{0x21, 0xFC, 0x0D}},
	{"electric lime", RGB{0xA8, 0xFF, 0x04}},
	{"electric pink", RGB{0xFF, 0x04, 0x90}},
	{"electric purple", RGB{0xAA, 0x23, 0xFF}},
	{"emerald", RGB{0x01, 0xA0, 0x49}},
	{"emerald green", RGB{0x02, 0x8F, 0x1E}},
	{"evergreen", RGB{0x05, 0x47, 0x2A}},
	{"faded blue", RGB{0x65, 0x8C, 0xBB}},
	{"faded green", RGB{0x7B, 0xB2, 0x74}},
	{"fern", RGB{0x63, 0xA9, 0x50}},
	{"flamingo", RGB{0xFC, 0x8E, 0xAC}},
	{"fog", RGB{0xD7, 0xD0, 0xC0}},
	{"forest", RGB{0x0B, 0x55, 0x09}},
	{"french blue", RGB{0x43, 0x6B, 0xAD}},
	{"garnet", RGB{0x73, 0x28, 0x2C}},
	{"golden", RGB{0xF5, 0xBF, 0x03}},
	{"golden yellow", RGB{0xFE, 0xC6, 0x15}},
	{"grape", RGB{0x6C, 0x34, 0x61}},
	{"grass", RGB{0x5C, 0xAC, 0x2D}},
	{"grass green", RGB{0x3F, 0x9B, 0x0B}},
	{"gray blue", RGB{0x6B, 0x8B, 0xA4}},
	{"gray green", RGB{0x78, 0x97, 0x72}},
	{"gunmetal", RGB{0x53, 0x65, 0x72}},
	{"hazel", RGB{0x8E, 0x76, 0x18}},
	{"heather", RGB{0xA4, 0x84, 0xAC}},
	{"hunter green", RGB{0x0B, 0x40, 0x08}},
	{"ice blue", RGB{0xD7, 0xFF, 0xFE}},
	{"iris", RGB{0x62, 0x58, 0xC4}},
	{"jade", RGB{0x1F, 0xA7, 0x74}},
	{"jungle green", RGB{0x04, 0x82, 0x43}},
	{"kelly green", RGB{0x02, 0xAB, 0x2E}},
	{"key lime", RGB{0xAE, 0xFF, 0x6E}},
	{"lavender blue", RGB{0x8B, 0x88, 0xF8}},
	{"leaf green", RGB{0x5C, 0xA9, 0x04}},
	{"lemon", RGB{0xFD, 0xFF, 0x52}},
	{"lemon lime", RGB{0xBF, 0xFE, 0x28}},
	{"lilac", RGB{0xCE, 0xA2, 0xFD}},
	{"lipstick", RGB{0xD5, 0x17, 0x4E}},
	{"lipstick red", RGB{0xC0, 0x02, 0x2F}},
	{"mahogany", RGB{0x4A, 0x01, 0x00}},
	{"mango", RGB{0xFF, 0xA6, 0x2B}},
	{"marigold", RGB{0xFC, 0xC0, 0x06}},
	{"marine blue", RGB{0x01, 0x38, 0x6A}},
	{"mauve", RGB{0xAE, 0x71, 0x81}},
	{"melon", RGB{0xFF, 0x78, 0x55}},
	{"midnight", RGB{0x03, 0x01, 0x2D}},
	{"midnight purple", RGB{0x28, 0x01, 0x37}},
	{"military green", RGB{0x66, 0x7C, 0x3E}},
	{"milk chocolate", RGB{0x7F, 0x4E, 0x1E}},
	{"mint", RGB{0x9F, 0xFE, 0xB0}},
	{"mint green", RGB{0x8F, 0xFF, 0x9F}},
	{"mocha", RGB{0x9D, 0x75, 0x51}},
	{"moss", RGB{0x76, 0x99, 0x58}},
	{"moss green", RGB{0x65, 0x8B, 0x38}},
	{"mud", RGB{0x73, 0x5C, 0x12}},
	{"mulberry", RGB{0x92, 0x0A, 0x4E}},
	{"mustard", RGB{0xCE, 0xB3, 0x01}},
	{"navy green", RGB{0x35, 0x53, 0x0A}},
	{"neon green", RGB{0x0C, 0xFF, 0x0C}},
	{"neon pink", RGB{0xFE, 0x01, 0x9A}},
	{"neon purple", RGB{0xBC, 0x13, 0xFE}},
	{"neon yellow", RGB{0xCF, 0xFF, 0x04}},
	{"ocean", RGB{0x01, 0x7B, 0x92}},
	{"ocean blue", RGB{0x03, 0x71, 0x9C}},
	{"ocean green", RGB{0x3D, 0x99, 0x73}},
	{"ochre", RGB{0xBF, 0x87, 0x05}},
	{"off white", RGB{0xFF, 0xFF, 0xE4}},
	{"olive green", RGB{0x67, 0x7A, 0x04}},
	{"opal", RGB{0xA8, 0xC3, 0xBC}},
	{"pale blue", RGB{0xD0, 0xFE, 0xFE}},
	{"pale lavender", RGB{0xEE, 0xCF, 0xFE}},
	{"pale lilac", RGB{0xE4, 0xCB, 0xFF}},
	{"pale olive", RGB{0xB9, 0xCC, 0x81}},
	{"pale peach", RGB{0xFF, 0xE5, 0xAD}},
	{"pale pink", RGB{0xFF, 0xCF, 0xDC}},
	{"pale rose", RGB{0xFD, 0xC1, 0xC5}},
	{"pale yellow", RGB{0xFF, 0xFF, 0x84}},
	{"pastel blue", RGB{0xA2, 0xBF, 0xFE}},
	{"pastel green", RGB{0xB0, 0xFF, 0x9D}},
	{"pastel orange", RGB{0xFF, 0x96, 0x4F}},
	{"pastel pink", RGB{0xFF, 0xBA, 0xCD}},
	{"pastel purple", RGB{0xCA, 0xA0, 0xFF}},
	{"pastel yellow", RGB{0xFF, 0xFE, 0x71}},
	{"pea green", RGB{0x8E, 0xAB, 0x12}},
	{"peach", RGB{0xFF, 0xB0, 0x7C}},
	{"peacock blue", RGB{0x01, 0x67, 0x95}},
	{"pear", RGB{0xCB, 0xF8, 0x5F}},
	{"periwinkle", RGB{0x8E, 0x82, 0xFE}},
	{"petrol", RGB{0x00, 0x5F, 0x6A}},
	{"pine", RGB{0x2B, 0x5D, 0x34}},
	{"pine green", RGB{0x0A, 0x48, 0x1E}},
	{"pistachio", RGB{0xC0, 0xFA, 0x8B}},
	{"plum purple", RGB{0x4E, 0x03, 0x50}},
	{"powder pink", RGB{0xFF, 0xB2, 0xD0}},
	{"primary blue", RGB{0x08, 0x04, 0xF9}},
	{"prussian blue", RGB{0x00, 0x41, 0x77}},
	{"puce", RGB{0xA5, 0x7E, 0x52}},
	{"pumpkin", RGB{0xE1, 0x74, 0x01}},
	{"pumpkin orange", RGB{0xFB, 0x7D, 0x07}},
	{"raspberry", RGB{0xB0, 0x01, 0x49}},
	{"raw sienna", RGB{0x9A, 0x62, 0x00}},
	{"raw umber", RGB{0xA7, 0x58, 0x0E}},
	{"robin egg blue", RGB{0x8A, 0xF1, 0xFE}},
	{"rose", RGB{0xCF, 0x62, 0x75}},
	{"rose pink", RGB{0xF7, 0x87, 0x9A}},
	{"rose red", RGB{0xBE, 0x01, 0x3C}},
	{"royal purple", RGB{0x4B, 0x00, 0x6E}},
	{"ruby", RGB{0xCA, 0x01, 0x47}},
	{"rust", RGB{0xA8, 0x3C, 0x09}},
	{"rust orange", RGB{0xC4, 0x55, 0x08}},
	{"rust red", RGB{0xAA, 0x23, 0x04}},
	{"sage", RGB{0x87, 0xAE, 0x73}},
	{"sage green", RGB{0x88, 0xB3, 0x78}},
	{"sand", RGB{0xE2, 0xCA, 0x76}},
	{"sandstone", RGB{0xC9, 0xAE, 0x74}},
	{"sapphire", RGB{0x21, 0x38, 0xAB}},
	{"scarlet", RGB{0xBE, 0x01, 0x19}},
	{"sea blue", RGB{0x04, 0x74, 0x95}},
	{"sea green", RGB{0x53, 0xFC, 0xA1}},
	{"seafoam", RGB{0x80, 0xF9, 0xAD}},
	{"seafoam green", RGB{0x7A, 0xF9, 0xAB}},
	{"sepia", RGB{0x98, 0x5E, 0x2B}},
	{"shamrock green", RGB{0x02, 0xC1, 0x4D}},
	{"shocking pink", RGB{0xFE, 0x02, 0xA2}},
	{"sky", RGB{0x82, 0xCA, 0xFC}},
	{"slate", RGB{0x51, 0x65, 0x72}},
	{"slate blue", RGB{0x5B, 0x7C, 0x99}},
	{"slate green", RGB{0x65, 0x82, 0x58}},
	{"smoke", RGB{0xB2, 0xB9, 0xA8}},
	{"soft blue", RGB{0x64, 0x88, 0xEA}},
	{"soft green", RGB{0x6F, 0xC2, 0x76}},
	{"soft pink", RGB{0xFD, 0xB0, 0xC0}},
	{"soft purple", RGB{0xA6, 0x6F, 0xB5}},
	{"spring green", RGB{0xA9, 0xF9, 0x71}},
	{"steel", RGB{0x73, 0x82, 0x87}},
	{"steel gray", RGB{0x6F, 0x82, 0x8A}},
	{"stone", RGB{0xAD, 0xA5, 0x87}},
	{"storm blue", RGB{0x50, 0x7B, 0x9C}},
	{"straw", RGB{0xFC, 0xF6, 0x79}},
	{"strawberry", RGB{0xFB, 0x29, 0x43}},
	{"sunflower", RGB{0xFF, 0xC5, 0x12}},
	{"sunshine yellow", RGB{0xFF, 0xFD, 0x37}},
	{"tangerine", RGB{0xFF, 0x94, 0x08}},
	{"taupe", RGB{0xB9, 0xA2, 0x81}},
	{"teal blue", RGB{0x01, 0x88, 0x9F}},
	{"teal green", RGB{0x25, 0xA3, 0x6F}},
	{"terracotta", RGB{0xCA, 0x66, 0x41}},
	{"turquoise blue", RGB{0x06, 0xB1, 0xC4}},
	{"turquoise green", RGB{0x04, 0xF4, 0x89}},
	{"twilight", RGB{0x4E, 0x51, 0x8B}},
	{"twilight blue", RGB{0x0A, 0x43, 0x7A}},
	{"ultramarine", RGB{0x20, 0x00, 0xB1}},
	{"vermilion", RGB{0xE3, 0x42, 0x34}},
	{"vivid green", RGB{0x2F, 0xEF, 0x10}},
	{"warm gray", RGB{0x97, 0x8A, 0x84}},
	{"watermelon", RGB{0xFD, 0x46, 0x59}},
	{"wine", RGB{0x80, 0x01, 0x3F}},
	{"wine red", RGB{0x7B, 0x03, 0x23}},
	{"wintergreen", RGB{0x20, 0xF9, 0x86}},
	{"wisteria", RGB{0xA8, 0x7C, 0xA8}},
}

var extendedNames, extendedNameList = buildTable(extendedTable)
