package override

// House returns the corrections for House member pages.
func House() Table {
	return Table{
		{First: "Matthew", Last: "Rosendale"}: {
			{Kind: Replace, Match: "3300 2ND AVENUE N SUITES 7-8", Text: "3300 2ND AVENUE N SUITE 7"},
		},
		{First: "Terri", Last: "Sewell"}: {
			{Kind: Replace, Match: "101 SOUTH LAWRENCE ST COURTHOUSE ANNEX 3", Text: "101 SOUTH LAWRENCE ST"},
		},
		{First: "Joe", Last: "Wilson"}: {
			{Kind: Replace, Match: "1700 SUNSET BLVD (US 378), SUITE 1", Text: "1700 SUNSET BLVD STE 1"},
		},
		{First: "Robert", Last: "Wittman"}: {
			{Kind: Remove, Match: "508 CHURCH LANE"},
			{Kind: Remove, Match: "307 MAIN STREET"},
		},
		{First: "Andy", Last: "Biggs"}: {
			{Kind: Remove, Match: "SUPERSTITION PLAZA"},
		},
		{First: "John", Last: "Carter"}: {
			{Kind: Remove, Match: "SUITE # I-10"},
		},
		{First: "Michael", Last: "Cloud"}: {
			{Kind: Remove, Match: "TOWER II"},
		},
		{First: "Tony", Last: "Gonzales"}: {
			{Kind: Rewrite, Mode: Contains, Match: " (BY APPT ONLY)", Text: ""},
		},
		{First: "Garret", Last: "Graves"}: {
			{Kind: Replace, Mode: Contains, Match: "615 E WORTHY STREET GONZALES", Text: "GONZALES"},
			{Kind: InsertBefore, Match: "GONZALES", Text: "615 E WORTHY ST"},
		},
		{First: "Jared", Last: "Huffman"}: {
			{Kind: Replace, Match: "430 NORTH FRANKLIN ST FORT BRAGG, CA 95437", Text: "FORT BRAGG, CA 95437"},
			{Kind: Replace, Mode: Contains, Match: "FORT BRAGG 95437", Text: "FORT BRAGG, CA 95437"},
			{Kind: InsertBefore, Match: "FORT BRAGG, CA 95437", Text: "430 NORTH FRANKLIN ST"},
		},
		{First: "Bill", Last: "Huizenga"}: {
			{Kind: Rewrite, Mode: Contains, Match: "108 PORTAGE, MI 49002", Text: "108\nPORTAGE, MI 49002"},
		},
		{First: "Mike", Last: "Johnson"}: {
			{Kind: Remove, Match: "444 CASPARI DRIVE"},
			{Kind: Remove, Match: "SOUTH HALL ROOM 224"},
			{Kind: Replace, Match: "PO BOX 4989 (MAILING)", Text: "PO BOX 4989"},
		},
		{First: "Michael", Last: "Lawler"}: {
			{Kind: Remove, Match: "PO BOX 1645"},
		},
		{First: "Anna Paulina", Last: "Luna"}: {
			{Kind: Rewrite, Mode: Contains, Match: "OFFICE SUITE:", Text: "STE"},
		},
		{First: "Daniel", Last: "Meuser"}: {
			{Kind: Replace, Match: "SUITE 110, LOSCH PLAZA", Text: "SUITE 110"},
		},
		{First: "Max", Last: "Miller"}: {
			{Kind: InsertBefore, Match: "WASHINGTON", Text: "143 CANNON HOB"},
		},
		{First: "Frank", Last: "Pallone"}: {
			{Kind: Replace, Match: "67/69 CHURCH ST", Text: "67 CHURCH ST"},
		},
		{First: "Stacey", Last: "Plaskett"}: {
			{Kind: Replace, Match: "FREDERIKSTED, VI 00840", Text: "ST CROIX, VI 00840"},
		},
	}
}

// Senate returns the corrections for Senate member pages.
func Senate() Table {
	return Table{
		{First: "Tommy", Last: "Tuberville"}: {
			{Kind: Replace, Match: "BB&T CENTRE 41 WEST I-65", Text: "41 W I-65 SERVICE RD N STE 2300-A", Drop: 1},
		},
		{First: "Chuck", Last: "Grassley"}: {
			{Kind: Remove, Match: "210 WALNUT STREET"},
		},
		{First: "Joni", Last: "Ernst"}: {
			{Kind: Replace, Match: "2146 27", Text: "2146 27TH AVE", Drop: 2},
			{Kind: Remove, Match: "210 WALNUT STREET"},
		},
		{First: "Roger", Last: "Marshall"}: {
			{Kind: Rewrite, Mode: Contains, Match: "20002", Text: "20510"},
		},
		{First: "Angus", Last: "King"}: {
			{Kind: Replace, Mode: Prefix, Match: "40 WESTERN AVE", Text: "40 WESTERN AVE UNIT 412"},
		},
		{First: "Benjamin", Last: "Cardin"}: {
			{Kind: Replace, Match: "TOWER 1, SUITE 1710", Text: "SUITE 1710"},
		},
		{First: "Jeanne", Last: "Shaheen"}: {
			{Kind: Remove, Match: "OFFICE BUILDING"},
		},
		{First: "Robert", Last: "Menendez"}: {
			{Kind: Replace, Match: "HARBORSIDE 3, SUITE 1000", Text: "SUITE 1000"},
		},
		{First: "Martin", Last: "Heinrich"}: {
			{Kind: Replace, Mode: Prefix, Match: "709 HART", Text: "709 HART SOB, WASHINGTON, DC 20510"},
		},
		{First: "Charles", Last: "Schumer"}: {
			{Kind: Replace, Mode: Prefix, Match: "LEO O'BRIEN", Text: "1 CLINTON SQ STE 827"},
		},
		{First: "Kevin", Last: "Cramer"}: {
			{Kind: Remove, Match: "328 FEDERAL BUILDING"},
			{Kind: Replace, Match: "220 EAST ROSSER AVENUE", Text: "220 EAST ROSSER AVENUE RM 328"},
		},
		{First: "Sheldon", Last: "Whitehouse"}: {
			{Kind: Replace, Mode: Prefix, Match: "HART SENATE", Text: "530 HART SOB"},
		},
		{First: "John", Last: "Thune"}: {
			{Kind: Replace, Match: "UNITED STATES SENATE SD-511", Text: "511 DIRKSEN SOB"},
		},
		{First: "Mike", Last: "Rounds"}: {
			{Kind: Replace, Mode: Prefix, Match: "HART SENATE", Text: "716 HART SOB"},
		},
		{First: "Marsha", Last: "Blackburn"}: {
			{Kind: Replace, Mode: Prefix, Match: "10 WEST M", Text: "10 MARTIN LUTHER KING BLVD"},
		},
		{First: "Bill", Last: "Hagerty"}: {
			{Kind: Replace, Mode: Prefix, Match: "109 S", Text: "109 S HIGHLAND AVE"},
			{Kind: Replace, Match: "20002", Text: "20510"},
		},
		{First: "Ted", Last: "Cruz"}: {
			{Kind: Replace, Mode: Prefix, Match: "MICKEY LELAND FEDERAL", Text: "1919 SMITH ST STE 9047"},
			{Kind: Replace, Match: "167 RUSSELL", Text: "167 RUSSELL SOB"},
		},
		{First: "Peter", Last: "Welch"}: {
			{Kind: Rewrite, Mode: Contains, Match: "SR-124 RUSSELL", Text: "124 RUSSELL"},
		},
		{First: "John", Last: "Barrasso"}: {
			{Kind: Replace, Mode: Suffix, Match: "(COMMERCE BANK)", Text: "1575 DEWAR DR"},
		},
		{First: "Cynthia", Last: "Lummis"}: {
			{Kind: Replace, Mode: Prefix, Match: "RUSSELL SENATE", Text: "127 RUSSELL SOB"},
			{Kind: InsertAfter, Match: "127 RUSSELL SOB", Text: "WASHINGTON, DC 20510"},
			{Kind: Replace, Mode: Prefix, Match: "FEDERAL CENTER", Text: "2120 CAPITOL AVE STE 2007"},
			{Kind: InsertAfter, Match: "2120 CAPITOL AVE STE 2007", Text: "CHEYENNE, WY 82001"},
		},
	}
}
