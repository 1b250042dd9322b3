package cmd

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/bright-shard/boml/parse/toml"
	"github.com/bright-shard/boml/pkg"
	"github.com/spf13/cobra"
)

type TomlParams struct {
	Find   string `json:"find"`   // dotted path to look up, e.g. "a.b.c"
	Input  string `json:"input"`  // input file path
	Output string `json:"output"` // output file path; stdout if empty
}

var params *TomlParams

var parsedTable *toml.Table // last table produced by tomlRun, for inspection

var tomlCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml parse tools",
	Run:   tomlRun,
}

func init() {
	params = &TomlParams{}
	tomlCmd.Flags().StringVarP(&params.Find, "find", "f", "", "dotted path to look up, e.g. a.b.c")
	tomlCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	tomlCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
}

func tomlRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(params.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	data, err := os.ReadFile(params.Input)
	if err != nil {
		fmt.Println("read file error:", err)
		return
	}

	root, err := toml.Parse(data)
	if err != nil {
		fmt.Println(err)
		return
	}
	parsedTable = root

	var out string
	if params.Find != "" {
		v, ok := findPath(root, params.Find)
		if !ok {
			fmt.Println("key not found:", params.Find)
			return
		}
		out = fmt.Sprintf("%s = %s\n", params.Find, formatScalar(v))
	} else {
		var b strings.Builder
		dumpTable(&b, "", root)
		out = b.String()
	}

	if params.Output != "" {
		if err := os.WriteFile(params.Output, []byte(out), 0o644); err != nil {
			fmt.Println("write output error:", err)
		}
		return
	}
	fmt.Print(out)
}

// findPath walks a literal dot-split path; it does not understand quoted
// key segments containing a literal dot (use the library API directly
// for that).
func findPath(root *toml.Table, path string) (*toml.Value, bool) {
	segs := strings.Split(path, ".")
	cur := root
	var val *toml.Value
	for i, seg := range segs {
		v, ok := cur.Get(seg)
		if !ok {
			return nil, false
		}
		val = v
		if i < len(segs)-1 {
			sub, ok := v.AsTable()
			if !ok {
				return nil, false
			}
			cur = sub
		}
	}
	return val, true
}

func dumpTable(b *strings.Builder, prefix string, tbl *toml.Table) {
	keys := tbl.Keys()
	sort.Strings(keys)
	for _, k := range keys {
		v, _ := tbl.Get(k)
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}
		switch v.Kind {
		case toml.KindTable:
			sub, _ := v.AsTable()
			dumpTable(b, full, sub)
		case toml.KindArray:
			arr, _ := v.AsArray()
			for i, elem := range arr {
				if elem.Kind == toml.KindTable {
					sub, _ := elem.AsTable()
					dumpTable(b, fmt.Sprintf("%s[%d]", full, i), sub)
					continue
				}
				fmt.Fprintf(b, "%s[%d] = %s\n", full, i, formatScalar(elem))
			}
		default:
			fmt.Fprintf(b, "%s = %s\n", full, formatScalar(v))
		}
	}
}

func formatScalar(v *toml.Value) string {
	switch v.Kind {
	case toml.KindString:
		s, _ := v.AsString()
		return strconv.Quote(s)
	case toml.KindInteger:
		i, _ := v.AsInteger()
		return strconv.FormatInt(i, 10)
	case toml.KindFloat:
		f, _ := v.AsFloat()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case toml.KindBoolean:
		bv, _ := v.AsBoolean()
		return strconv.FormatBool(bv)
	default:
		return v.Kind.String()
	}
}
