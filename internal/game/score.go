// internal/game/score.go
//
// Bulls/cows scoring via the two-pass counting algorithm.
//
// Pass 1:
//   - Count exact-position matches as bulls.
//   - Tally remaining (non-bull) secret symbols by symbol.
//
// Pass 2:
//   - For each non-bull guess symbol: if there is remaining tally for
//     that symbol, count a cow and decrement; otherwise it's a miss.
//
// This is the multiset-intersection formulation, so repeated symbols on
// either side are handled correctly: secret "1123" vs guess "1111" is
// 2 bulls, 0 cows (not 2 bulls, 2 cows).

package game

// ScoreGuess computes bulls and cows for a secret/guess pair.
// Precondition: both codes have the same length — the session
// guarantees this through validation before calling. Pure and
// deterministic; allocates only the per-symbol tally.
func ScoreGuess(secret, guess string) Score {
	s := []rune(secret)
	g := []rune(guess)

	// Tally of secret symbols outside the bull positions.
	counts := make(map[rune]int, len(s))

	var sc Score
	for i := range g {
		if g[i] == s[i] {
			sc.Bulls++
		} else {
			counts[s[i]]++
		}
	}
	for i := range g {
		if g[i] == s[i] {
			continue
		}
		if counts[g[i]] > 0 {
			sc.Cows++
			counts[g[i]]--
		}
	}
	return sc
}
