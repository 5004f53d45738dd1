package textwidth

// vs16 is the emoji variation selector (U+FE0F): it asks for emoji
// presentation of the preceding character.
const vs16 = "️"

// PresentationTableVersion identifies the revision of the empirical width
// data below. Bump it whenever an entry is added or changed.
const PresentationTableVersion = "2025-11"

// presentationWidths maps base codepoints whose base+VS16 cluster is
// observed to occupy a single column on mainstream terminal emulators, even
// though generic width tables promote emoji presentation to two columns.
// This is measured terminal behavior, not something derivable from Unicode
// data: the entries come from probing cursor positions on xterm, VTE,
// iTerm2, and Windows Terminal with common monospace fonts. Treat it as
// versioned data to maintain, not logic to rederive.
var presentationWidths = map[rune]int{
	'‼': 1, // double exclamation mark
	'⁉': 1, // exclamation question mark
	'™': 1, // trade mark sign
	'ℹ': 1, // information source
	'↔': 1, // left right arrow
	'↕': 1, // up down arrow
	'↖': 1, // north west arrow
	'↗': 1, // north east arrow
	'↘': 1, // south east arrow
	'↙': 1, // south west arrow
	'↩': 1, // leftwards arrow with hook
	'↪': 1, // rightwards arrow with hook
	'⌨': 1, // keyboard
	'⏏': 1, // eject symbol
	'Ⓜ': 1, // circled latin capital letter m
	'▪': 1, // black small square
	'▫': 1, // white small square
	'▶': 1, // black right-pointing triangle
	'◀': 1, // black left-pointing triangle
	'☀': 1, // black sun with rays
	'☁': 1, // cloud
	'☂': 1, // umbrella
	'☃': 1, // snowman
	'☎': 1, // black telephone
	'☑': 1, // ballot box with check
	'☘': 1, // shamrock
	'☝': 1, // white up pointing index
	'☠': 1, // skull and crossbones
	'☢': 1, // radioactive sign
	'☣': 1, // biohazard sign
	'☦': 1, // orthodox cross
	'☮': 1, // peace symbol
	'☯': 1, // yin yang
	'☸': 1, // wheel of dharma
	'☹': 1, // white frowning face
	'☺': 1, // white smiling face
	'♀': 1, // female sign
	'♂': 1, // male sign
	'♟': 1, // black chess pawn
	'♠': 1, // black spade suit
	'♣': 1, // black club suit
	'♥': 1, // black heart suit
	'♦': 1, // black diamond suit
	'♨': 1, // hot springs
	'♻': 1, // black universal recycling symbol
	'⚔': 1, // crossed swords
	'⚕': 1, // staff of aesculapius
	'⚖': 1, // scales
	'⚗': 1, // alembic
	'⚙': 1, // gear
	'⚛': 1, // atom symbol
	'⚜': 1, // fleur-de-lis
	'⚠': 1, // warning sign
	'⚧': 1, // male with stroke and male and female sign
	'✂': 1, // black scissors
	'✈': 1, // airplane
	'✉': 1, // envelope
	'✌': 1, // victory hand
	'✍': 1, // writing hand
	'✏': 1, // pencil
	'✒': 1, // black nib
	'✔': 1, // heavy check mark
	'✖': 1, // heavy multiplication x
	'✝': 1, // latin cross
	'✡': 1, // star of david
	'✳': 1, // eight spoked asterisk
	'✴': 1, // eight pointed black star
	'❄': 1, // snowflake
	'❇': 1, // sparkle
	'❣': 1, // heavy heart exclamation mark ornament
	'❤': 1, // heavy black heart
	'➡': 1, // black rightwards arrow
	'⤴': 1, // arrow pointing rightwards then curving upwards
	'⤵': 1, // arrow pointing rightwards then curving downwards
	'⬅': 1, // leftwards black arrow
	'⬆': 1, // upwards black arrow
	'⬇': 1, // downwards black arrow
	'〰': 1, // wavy dash
	'〽': 1, // part alternation mark
}
