// Command katsuyou conjugates Japanese verbs from the command line.
//
//	katsuyou conjugate 食べる --form te --form past,negative,polite
//	katsuyou conjugate --kana はなす --kanji 話す --class godan --form potential,present
//	katsuyou table 来る -o yaml
//	katsuyou identify 行った
//	katsuyou forms
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
