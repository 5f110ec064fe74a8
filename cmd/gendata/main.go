package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"github.com/jnb666/playground/dataset"
	"github.com/jnb666/playground/nnet"
	"os"
	"strings"
)

func main() {
	var name, features string
	var noise, ratio, size int
	var seed int64
	var ascii bool
	flag.StringVar(&name, "dataset", "circles", "data set: "+familyNames())
	flag.IntVar(&noise, "noise", 0, "noise level 0-50")
	flag.IntVar(&ratio, "ratio", 50, "percentage of points used for training 10-90")
	flag.Int64Var(&seed, "seed", 0, "random number seed, 0 to use the time")
	flag.StringVar(&features, "features", "x1,x2", "comma separated feature columns to add")
	flag.BoolVar(&ascii, "ascii", false, "print a character plot instead of csv")
	flag.IntVar(&size, "size", 40, "width of the character plot")
	flag.Parse()

	rng := nnet.SetSeed(seed)
	set := dataset.Set{Points: dataset.Generate(rng, dataset.ParseFamily(name), noise, ratio)}
	var ids []string
	if features != "" {
		ids = strings.Split(features, ",")
	}
	enabled := nnet.Enabled(nnet.SelectFeatures(ids))
	for _, f := range enabled {
		set.Features = append(set.Features, f.Func())
	}
	if ascii {
		fmt.Print(set.ASCII(size))
		train, test := set.Split()
		classes := set.Classes()
		fmt.Printf("%s: %d train %d test, o=%s x=%s\n", name, len(train), len(test), classes[0], classes[1])
		return
	}
	cols := make([]string, len(enabled))
	for i, f := range enabled {
		cols[i] = f.ID
	}
	w := csv.NewWriter(os.Stdout)
	nnet.CheckErr(w.Write(dataset.Header(cols)))
	for i := 0; i < set.Len(); i++ {
		nnet.CheckErr(w.Write(set.Record(i)))
	}
	w.Flush()
	nnet.CheckErr(w.Error())
}

func familyNames() string {
	names := []string{}
	for _, f := range dataset.Families() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}
