package main

import (
	"fmt"
	"math/rand"
)

var firstNames = []string{
	"Alice", "Benjamin", "Clara", "Daniel", "Elena", "Felix", "Grace",
	"Henry", "Isabel", "Jack", "Katherine", "Liam", "Maya", "Noah",
	"Olivia", "Peter", "Quinn", "Rosa", "Samuel", "Tessa", "Ulysses",
	"Victoria", "Walter", "Ximena", "Yusuf", "Zoe", "Amara", "Bruno",
	"Celine", "Dmitri", "Esther", "Franco", "Gwen", "Hugo", "Ingrid",
	"Jonas", "Kira", "Lucas", "Mona", "Nadia",
}

// Usernames picks n distinct first names at random. Once the name pool
// runs out, further names get a numeric suffix to stay unique within
// the batch.
func Usernames(n int) []string {
	seen := make(map[string]bool, n)
	out := make([]string, 0, n)

	for len(out) < n {
		name := firstNames[rand.Intn(len(firstNames))]

		if seen[name] {
			if len(seen) < len(firstNames) {
				continue
			}
			name = fmt.Sprintf("%s%d", name, len(out))
			if seen[name] {
				continue
			}
		}

		seen[name] = true
		out = append(out, name)
	}

	return out
}
