package casino

import "strconv"

// Guess is a roulette bet position. The wire type is a plain u8; the
// codec does not range-check it (interpretation belongs to the
// program), but Valid and String cover the positions the program
// defines.
type Guess uint8

const (
	GuessZero       Guess = 0
	GuessDoubleZero Guess = 1
	GuessR1         Guess = 2
	GuessB2         Guess = 3
	GuessR3         Guess = 4
	GuessB4         Guess = 5
	GuessR5         Guess = 6
	GuessB6         Guess = 7
	GuessR7         Guess = 8
	GuessB8         Guess = 9
	GuessR9         Guess = 10
	GuessB10        Guess = 11
	GuessB11        Guess = 12
	GuessR12        Guess = 13
	GuessB13        Guess = 14
	GuessR14        Guess = 15
	GuessB15        Guess = 16
	GuessR16        Guess = 17
	GuessB17        Guess = 18
	GuessR18        Guess = 19
	GuessR19        Guess = 20
	GuessB20        Guess = 21
	GuessR21        Guess = 22
	GuessB22        Guess = 23
	GuessR23        Guess = 24
	GuessB24        Guess = 25
	GuessR25        Guess = 26
	GuessB26        Guess = 27
	GuessR27        Guess = 28
	GuessB28        Guess = 29
	GuessB29        Guess = 30
	GuessR30        Guess = 31
	GuessB31        Guess = 32
	GuessR32        Guess = 33
	GuessB33        Guess = 34
	GuessR34        Guess = 35
	GuessB35        Guess = 36
	GuessR36        Guess = 37
	GuessRed        Guess = 38
	GuessBlack      Guess = 39
	GuessEven       Guess = 40
	GuessOdd        Guess = 41
	GuessCol1       Guess = 42
	GuessCol2       Guess = 43
	GuessCol3       Guess = 44
	GuessDozen1     Guess = 45
	GuessDozen2     Guess = 46
	GuessDozen3     Guess = 47
	GuessLow        Guess = 48
	GuessHigh       Guess = 49
)

var guessNames = []string{
	"Zero", "DoubleZero",
	"R1", "B2", "R3", "B4", "R5", "B6", "R7", "B8", "R9", "B10",
	"B11", "R12", "B13", "R14", "B15", "R16", "B17", "R18", "R19", "B20",
	"R21", "B22", "R23", "B24", "R25", "B26", "R27", "B28", "B29", "R30",
	"B31", "R32", "B33", "R34", "B35", "R36",
	"Red", "Black", "Even", "Odd",
	"Col1", "Col2", "Col3",
	"Dozen1", "Dozen2", "Dozen3",
	"Low", "High",
}

// Valid reports whether g is one of the positions the program defines.
func (g Guess) Valid() bool {
	return int(g) < len(guessNames)
}

func (g Guess) String() string {
	if !g.Valid() {
		return "Guess(" + strconv.Itoa(int(g)) + ")"
	}
	return guessNames[g]
}
