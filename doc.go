// Package pullbadge builds shields.io badge URLs that show the GitHub
// Container Registry pull count for a repository's package.
//
// pullbadge is designed as an SDK-first library. A [Builder] is configured
// with the functional options pattern and turns a parsed [Repository], a
// package name and [BadgeOptions] into a set of [Artifacts]: a dynamic-JSON
// badge URL with its markdown and HTML embeds, and a direct shield URL with
// its markdown embed. All builder functions are pure; the same inputs always
// produce byte-identical output.
//
// # Quick Start
//
//	repo, err := pullbadge.ParseRepository("https://github.com/acme/widget")
//	if err != nil {
//	    return err
//	}
//
//	b, _ := pullbadge.New()
//	art, err := b.Build(repo, "widget", pullbadge.BadgeOptions{Label: "pulls"})
//	fmt.Println(art.JSONMarkdown)
//
// # Badge Options
//
// Styling options carry sentinel values that mean "leave it to the service":
//
//   - Logo [LogoNone] ("none")
//   - Color [ColorDefault] ("default")
//   - Style [StyleFlat] ("flat")
//
// A sentinel or empty value omits the query parameter entirely. A blank label
// falls back to [DefaultLabel].
//
// # Interactive Sessions
//
// [Session] models the step-by-step form as an immutable value with pure
// reducers: [Session.EnterRepository], [Session.LoadPackages],
// [Session.SetPackageName] and friends each return a new Session. The
// [Session.Presentation] projection tells a rendering layer which sections
// are visible, and [RevealSchedule] gives the staggered reveal offsets.
//
// # Architecture
//
// The cmd/pullbadge binary wires the library to a terminal:
//
//   - internal/form: event-driven controller that owns a Session
//   - internal/store: latest snapshot with pub/sub for renderers
//   - internal/notice: toast and copy-acknowledgment timers
//   - internal/output: colored terminal rendering
//   - internal/gitremote: origin remote detection for the current checkout
//   - config: YAML/TOML configuration for defaults and batch generation
//
// No network request is ever made. Badge URLs are never fetched or validated.
package pullbadge
