// Command iortool converts object references between their stringified
// "IOR:<hex>" form and the corbaloc: URL form, and prints a summary of the
// IIOP profiles found in the reference.
//
//	iortool 'IOR:010000000d00...'
//	iortool 'corbaloc:iiop:1.2@example.org:1050/MyObj'
//
// The reference may also be piped on stdin.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/m-lab/go/flagx"
	"github.com/m-lab/go/rtx"

	"github.com/corbalite/giopkg/ior"
	"github.com/corbalite/giopkg/protocol/giop"
)

var quiet = flag.Bool("quiet", false, "Print only the converted reference, no profile summary")

func init() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}

func main() {
	flag.Parse()
	rtx.Must(flagx.ArgsFromEnv(flag.CommandLine), "Could not get args from env")

	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input == "" {
		scanner := bufio.NewScanner(os.Stdin)
		scanner.Buffer(make([]byte, 1024*1024), 1024*1024)
		if scanner.Scan() {
			input = strings.TrimSpace(scanner.Text())
		}
		rtx.Must(scanner.Err(), "Could not read reference from stdin")
	}
	if input == "" {
		log.Fatal("no object reference given")
	}

	var (
		ref *giop.IOR
		err error
	)
	switch {
	case strings.HasPrefix(strings.ToUpper(input), "IOR:"):
		ref, err = ior.FromString(input)
		rtx.Must(err, "Could not decode stringified reference")
		url, err := ior.ToURL(ref)
		rtx.Must(err, "Could not convert reference to URL")
		fmt.Println(url)
	case strings.HasPrefix(input, "corbaloc:"):
		ref, err = ior.FromURL(input)
		rtx.Must(err, "Could not parse corbaloc URL")
		s, err := ior.ToString(ref)
		rtx.Must(err, "Could not stringify reference")
		fmt.Println(s)
	default:
		log.Fatalf("not an IOR: or corbaloc: reference: %q", input)
	}

	if *quiet {
		return
	}
	if ref.TypeID != "" {
		fmt.Printf("type_id: %s\n", ref.TypeID)
	}
	for i, profile := range ref.Profiles {
		switch profile.Tag {
		case giop.TAG_INTERNET_IOP:
			body := profile.IIOP
			fmt.Printf("profile %d: IIOP %s %s:%d key %q\n",
				i, body.IIOPVersion, body.Host, body.Port, body.ObjectKey)
			for _, component := range body.Components {
				fmt.Printf("  component %s: %d octets\n",
					giop.ComponentTagName(component.Tag), len(component.ComponentData))
			}
		case giop.TAG_MULTIPLE_COMPONENTS:
			fmt.Printf("profile %d: %s: %d components\n",
				i, giop.ProfileTagName(profile.Tag), len(profile.Components))
		default:
			fmt.Printf("profile %d: %s: %d octets\n",
				i, giop.ProfileTagName(profile.Tag), len(profile.Raw))
		}
	}
}
