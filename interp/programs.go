package interp

// Preinstalled deskbasic programs, written byte-for-byte into the
// filesystem at desktop startup (spec §6).

const ProgramHello = `PRINT "Hello, world!"
END
`

const ProgramNums = `LET i = 1
loop:
IF i > 10 GOTO done
PRINT i
LET i = i + 1
GOTO loop
done:
END
`

const ProgramAverage = `LET sum = 0
LET count = 0
loop:
PRINT "Enter a number:"
INPUT n
IF n = "quit" GOTO done
LET sum = sum + n
LET count = count + 1
GOTO loop
done:
LET avg = sum / count
PRINT avg
END
`

const ProgramPi = `PRINT "Terms:"
INPUT n
LET sum = 0
LET k = 0
loop:
IF k >= n GOTO done
LET term = 1 / (2 * k + 1)
IF k % 2 = 0 GOTO addterm
LET term = 0 - term
addterm:
LET sum = sum + term
LET k = k + 1
GOTO loop
done:
LET pi = 4 * sum
PRINT pi
END
`

// Preinstalled maps each default filename to its literal source.
var Preinstalled = map[string]string{
	"hello":   ProgramHello,
	"nums":    ProgramNums,
	"average": ProgramAverage,
	"pi":      ProgramPi,
}

// PreinstalledOrder fixes the creation order for Preinstalled, since a Go
// map has no iteration order of its own and the listing in spec §8's
// first end-to-end scenario depends on one.
var PreinstalledOrder = []string{"hello", "nums", "average", "pi"}
