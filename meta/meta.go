// meta/meta.go
package meta

// MAX_TURNS is the length of a full game: three turn bands of six turns.
const MAX_TURNS = 18

// MAX_INPUTS stops an autoplay game that keeps making inputs without finishing turns.
const MAX_INPUTS = 2000

// NUM_GAMES is the default number of autoplay games per agent.
const NUM_GAMES = 30
