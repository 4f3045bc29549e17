package blocks

// blockDescriptions[v-1][ec] lists the layout groups for version v and
// error-correction level ec (0=L,1=M,2=Q,3=H), transcribed from
// ISO/IEC 18004 Annex I (original_source/blocks.c's block_descriptions).
var blockDescriptions = [40][4][]groupSpec{
	{ // version 1
		{{1, 26, 19, 2}}, // L
		{{1, 26, 16, 4}}, // M
		{{1, 26, 13, 6}}, // Q
		{{1, 26, 9, 8}}, // H
	},
	{ // version 2
		{{1, 44, 34, 4}}, // L
		{{1, 44, 28, 8}}, // M
		{{1, 44, 22, 11}}, // Q
		{{1, 44, 16, 14}}, // H
	},
	{ // version 3
		{{1, 70, 55, 7}}, // L
		{{1, 70, 44, 13}}, // M
		{{2, 35, 17, 9}}, // Q
		{{2, 35, 13, 11}}, // H
	},
	{ // version 4
		{{1, 100, 80, 10}}, // L
		{{2, 50, 32, 9}}, // M
		{{2, 50, 24, 13}}, // Q
		{{4, 25, 9, 8}}, // H
	},
	{ // version 5
		{{1, 134, 108, 13}}, // L
		{{2, 67, 43, 12}}, // M
		{{2, 33, 15, 9}, {2, 34, 16, 9}}, // Q
		{{2, 33, 11, 11}, {2, 34, 12, 11}}, // H
	},
	{ // version 6
		{{2, 86, 68, 9}}, // L
		{{4, 43, 27, 8}}, // M
		{{4, 43, 19, 12}}, // Q
		{{4, 43, 15, 14}}, // H
	},
	{ // version 7
		{{2, 98, 78, 10}}, // L
		{{4, 49, 31, 9}}, // M
		{{2, 32, 14, 9}, {4, 33, 15, 9}}, // Q
		{{4, 39, 13, 13}, {1, 40, 14, 13}}, // H
	},
	{ // version 8
		{{2, 121, 97, 12}}, // L
		{{2, 60, 38, 11}, {2, 61, 39, 11}}, // M
		{{4, 40, 18, 11}, {2, 41, 19, 11}}, // Q
		{{4, 40, 14, 13}, {2, 41, 15, 13}}, // H
	},
	{ // version 9
		{{2, 146, 116, 15}}, // L
		{{3, 58, 36, 11}, {2, 59, 37, 11}}, // M
		{{4, 36, 16, 10}, {4, 37, 17, 10}}, // Q
		{{4, 36, 12, 12}, {4, 37, 13, 12}}, // H
	},
	{ // version 10
		{{2, 86, 68, 9}, {2, 87, 69, 9}}, // L
		{{4, 69, 43, 13}, {1, 70, 44, 13}}, // M
		{{6, 43, 19, 12}, {2, 44, 20, 12}}, // Q
		{{6, 43, 15, 14}, {2, 44, 16, 14}}, // H
	},
	{ // version 11
		{{4, 101, 81, 10}}, // L
		{{1, 80, 50, 15}, {4, 81, 51, 15}}, // M
		{{4, 50, 22, 14}, {4, 51, 23, 14}}, // Q
		{{3, 36, 12, 12}, {8, 37, 13, 12}}, // H
	},
	{ // version 12
		{{2, 116, 92, 12}, {2, 117, 93, 12}}, // L
		{{6, 58, 36, 11}, {2, 59, 37, 11}}, // M
		{{4, 46, 20, 13}, {6, 47, 21, 13}}, // Q
		{{7, 42, 14, 14}, {4, 43, 15, 14}}, // H
	},
	{ // version 13
		{{4, 133, 107, 13}}, // L
		{{8, 59, 37, 11}, {1, 60, 38, 11}}, // M
		{{8, 44, 20, 12}, {4, 45, 21, 12}}, // Q
		{{12, 33, 11, 11}, {4, 34, 12, 11}}, // H
	},
	{ // version 14
		{{3, 145, 115, 15}, {1, 146, 116, 15}}, // L
		{{4, 64, 40, 12}, {5, 65, 41, 12}}, // M
		{{11, 36, 16, 10}, {5, 37, 17, 10}}, // Q
		{{11, 36, 12, 12}, {5, 37, 13, 12}}, // H
	},
	{ // version 15
		{{5, 109, 87, 11}, {1, 110, 88, 11}}, // L
		{{5, 65, 41, 12}, {5, 66, 42, 12}}, // M
		{{5, 54, 24, 15}, {7, 55, 25, 15}}, // Q
		{{11, 36, 12, 12}, {7, 37, 13, 12}}, // H
	},
	{ // version 16
		{{5, 122, 98, 12}, {1, 123, 99, 12}}, // L
		{{7, 73, 45, 14}, {3, 74, 46, 14}}, // M
		{{15, 43, 19, 12}, {2, 44, 20, 12}}, // Q
		{{3, 45, 15, 15}, {13, 46, 16, 15}}, // H
	},
	{ // version 17
		{{1, 135, 107, 14}, {5, 136, 108, 14}}, // L
		{{10, 74, 46, 14}, {1, 75, 47, 14}}, // M
		{{1, 50, 22, 14}, {15, 51, 23, 14}}, // Q
		{{2, 42, 14, 14}, {17, 43, 15, 14}}, // H
	},
	{ // version 18
		{{5, 150, 120, 15}, {1, 151, 121, 15}}, // L
		{{9, 69, 43, 13}, {4, 70, 44, 13}}, // M
		{{17, 50, 22, 14}, {1, 51, 23, 14}}, // Q
		{{2, 42, 14, 14}, {19, 43, 15, 14}}, // H
	},
	{ // version 19
		{{3, 141, 113, 14}, {4, 142, 114, 14}}, // L
		{{3, 70, 44, 13}, {11, 71, 45, 13}}, // M
		{{17, 47, 21, 13}, {4, 48, 22, 13}}, // Q
		{{9, 39, 13, 13}, {16, 40, 14, 13}}, // H
	},
	{ // version 20
		{{3, 135, 107, 14}, {5, 136, 108, 14}}, // L
		{{3, 67, 41, 13}, {13, 68, 42, 13}}, // M
		{{15, 54, 24, 15}, {5, 55, 25, 15}}, // Q
		{{15, 43, 15, 14}, {10, 44, 16, 14}}, // H
	},
	{ // version 21
		{{4, 144, 116, 14}, {4, 145, 117, 14}}, // L
		{{17, 68, 42, 13}}, // M
		{{17, 50, 22, 14}, {6, 51, 23, 14}}, // Q
		{{19, 46, 16, 15}, {6, 47, 17, 15}}, // H
	},
	{ // version 22
		{{2, 139, 111, 14}, {7, 140, 112, 14}}, // L
		{{17, 74, 46, 14}}, // M
		{{7, 54, 24, 15}, {16, 55, 25, 15}}, // Q
		{{34, 37, 13, 12}}, // H
	},
	{ // version 23
		{{4, 151, 121, 15}, {5, 152, 122, 15}}, // L
		{{4, 75, 47, 14}, {14, 76, 48, 14}}, // M
		{{11, 54, 24, 15}, {14, 55, 25, 15}}, // Q
		{{16, 45, 15, 15}, {14, 46, 16, 15}}, // H
	},
	{ // version 24
		{{6, 147, 117, 15}, {4, 148, 118, 15}}, // L
		{{6, 73, 45, 14}, {14, 74, 46, 14}}, // M
		{{11, 54, 24, 15}, {16, 55, 25, 15}}, // Q
		{{30, 46, 16, 15}, {2, 47, 17, 15}}, // H
	},
	{ // version 25
		{{8, 132, 106, 13}, {4, 133, 107, 13}}, // L
		{{8, 75, 47, 14}, {13, 76, 48, 14}}, // M
		{{7, 54, 24, 15}, {22, 55, 25, 15}}, // Q
		{{22, 45, 15, 15}, {13, 46, 16, 15}}, // H
	},
	{ // version 26
		{{10, 142, 114, 14}, {2, 143, 115, 14}}, // L
		{{19, 74, 46, 14}, {4, 75, 47, 14}}, // M
		{{28, 50, 22, 14}, {6, 51, 23, 14}}, // Q
		{{33, 46, 16, 15}, {4, 47, 17, 15}}, // H
	},
	{ // version 27
		{{8, 152, 122, 15}, {4, 153, 123, 15}}, // L
		{{22, 73, 45, 14}, {3, 74, 46, 14}}, // M
		{{8, 53, 23, 15}, {26, 54, 24, 15}}, // Q
		{{12, 45, 15, 15}, {28, 46, 16, 15}}, // H
	},
	{ // version 28
		{{3, 147, 117, 15}, {10, 148, 118, 15}}, // L
		{{3, 73, 45, 14}, {23, 74, 46, 14}}, // M
		{{4, 54, 24, 15}, {31, 55, 25, 15}}, // Q
		{{11, 45, 15, 15}, {31, 46, 16, 15}}, // H
	},
	{ // version 29
		{{7, 146, 116, 15}, {7, 147, 117, 15}}, // L
		{{21, 73, 45, 14}, {7, 74, 46, 14}}, // M
		{{1, 53, 23, 15}, {37, 54, 24, 15}}, // Q
		{{19, 45, 15, 15}, {26, 46, 16, 15}}, // H
	},
	{ // version 30
		{{5, 145, 115, 15}, {10, 146, 116, 15}}, // L
		{{19, 75, 47, 14}, {10, 76, 48, 14}}, // M
		{{15, 54, 24, 15}, {25, 55, 25, 15}}, // Q
		{{23, 45, 15, 15}, {25, 46, 16, 15}}, // H
	},
	{ // version 31
		{{13, 145, 115, 15}, {3, 146, 116, 15}}, // L
		{{2, 74, 46, 14}, {29, 75, 47, 14}}, // M
		{{42, 54, 24, 15}, {1, 55, 25, 15}}, // Q
		{{23, 45, 15, 15}, {28, 46, 16, 15}}, // H
	},
	{ // version 32
		{{17, 145, 115, 15}}, // L
		{{10, 74, 46, 14}, {23, 75, 47, 14}}, // M
		{{10, 54, 24, 15}, {35, 55, 25, 15}}, // Q
		{{19, 45, 15, 15}, {35, 46, 16, 15}}, // H
	},
	{ // version 33
		{{17, 145, 115, 15}, {1, 146, 116, 15}}, // L
		{{14, 74, 46, 14}, {21, 75, 47, 14}}, // M
		{{29, 54, 24, 15}, {19, 55, 25, 15}}, // Q
		{{11, 45, 15, 15}, {46, 46, 16, 15}}, // H
	},
	{ // version 34
		{{13, 145, 115, 15}, {6, 146, 116, 15}}, // L
		{{14, 74, 46, 14}, {23, 75, 47, 14}}, // M
		{{44, 54, 24, 15}, {7, 55, 25, 15}}, // Q
		{{59, 46, 16, 15}, {1, 47, 17, 15}}, // H
	},
	{ // version 35
		{{12, 151, 121, 15}, {7, 152, 122, 15}}, // L
		{{12, 75, 47, 14}, {26, 76, 48, 14}}, // M
		{{39, 54, 24, 15}, {14, 55, 25, 15}}, // Q
		{{22, 45, 15, 15}, {41, 46, 16, 15}}, // H
	},
	{ // version 36
		{{6, 151, 121, 15}, {14, 152, 122, 15}}, // L
		{{6, 75, 47, 14}, {34, 76, 48, 14}}, // M
		{{46, 54, 24, 15}, {10, 55, 25, 15}}, // Q
		{{2, 45, 15, 15}, {64, 46, 16, 15}}, // H
	},
	{ // version 37
		{{17, 152, 122, 15}, {4, 153, 123, 15}}, // L
		{{29, 74, 46, 14}, {14, 75, 47, 14}}, // M
		{{49, 54, 24, 15}, {10, 55, 25, 15}}, // Q
		{{24, 45, 15, 15}, {46, 46, 16, 15}}, // H
	},
	{ // version 38
		{{4, 152, 122, 15}, {18, 153, 123, 15}}, // L
		{{13, 74, 46, 14}, {32, 75, 47, 14}}, // M
		{{48, 54, 24, 15}, {14, 55, 25, 15}}, // Q
		{{42, 45, 15, 15}, {32, 46, 16, 15}}, // H
	},
	{ // version 39
		{{20, 147, 117, 15}, {4, 148, 118, 15}}, // L
		{{40, 75, 47, 14}, {7, 76, 48, 14}}, // M
		{{43, 54, 24, 15}, {22, 55, 25, 15}}, // Q
		{{10, 45, 15, 15}, {67, 46, 16, 15}}, // H
	},
	{ // version 40
		{{19, 148, 118, 15}, {6, 149, 119, 15}}, // L
		{{18, 75, 47, 14}, {31, 76, 48, 14}}, // M
		{{34, 54, 24, 15}, {34, 55, 25, 15}}, // Q
		{{20, 45, 15, 15}, {61, 46, 16, 15}}, // H
	},
}