// ABOUTME: CLI commands for dietary guidance content.
// ABOUTME: Guidelines, recipes, flare protocol, and the clinic directory.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/jamiekretzschmar/gastrocare/internal/content"
	"github.com/jamiekretzschmar/gastrocare/internal/models"
	"github.com/spf13/cobra"
)

var guideCmd = &cobra.Command{
	Use:     "guide",
	Aliases: []string{"g"},
	Short:   "Show dietary guidelines",
	Long: `Show the core dietary rules for gastroparesis with immunosuppression.

Subcommands:
  guide recipes    Texture-safe recipes
  guide flare      The flare-up protocol
  guide education  How gastroparesis works and why the rules follow`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		category := ""
		for _, g := range content.Guidelines {
			if g.Category != category {
				category = g.Category
				fmt.Println()
				bold.Println(category)
			}
			marker := " "
			if g.Critical {
				marker = color.RedString("!")
			}
			fmt.Printf("  %s %s\n", marker, g.Rule)
			fmt.Printf("    %s\n", faint.Sprint(g.Reasoning))
		}
		return nil
	},
}

var recipesTexture string

var guideRecipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Show texture-safe recipes",
	Long: `Show texture-safe recipes.

Examples:
  gastrocare guide recipes
  gastrocare guide recipes --texture Liquid`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if recipesTexture != "" && !models.IsValidTexture(recipesTexture) {
			return fmt.Errorf("unknown texture: %s\nValid textures: Liquid, Pureed, Soft Solid, Solid", recipesTexture)
		}

		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		printed := 0
		for _, r := range content.Recipes {
			if recipesTexture != "" && r.Texture != models.Texture(recipesTexture) {
				continue
			}
			if printed > 0 {
				fmt.Println()
			}
			printed++
			bold.Println(r.Name)
			fmt.Printf("%s  %s\n", faint.Sprintf("[%s]", r.Texture), r.Description)
			fmt.Println("  Ingredients:")
			for _, ing := range r.Ingredients {
				fmt.Printf("    - %s\n", ing)
			}
			fmt.Println("  Instructions:")
			for j, step := range r.Instructions {
				fmt.Printf("    %d. %s\n", j+1, step)
			}
		}
		return nil
	},
}

var guideFlareCmd = &cobra.Command{
	Use:   "flare",
	Short: "Show the flare-up protocol",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := content.DefaultFlareProtocol
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		color.Red("FLARE-UP PROTOCOL — emergency management for severe symptoms")

		fmt.Println()
		bold.Println("When to activate")
		for _, a := range p.Activation {
			fmt.Printf("  - %s\n", a)
		}

		fmt.Println()
		bold.Println("Allowed foods")
		for _, f := range p.Allowed {
			fmt.Printf("  %s %s\n", color.GreenString("+"), f)
		}

		fmt.Println()
		bold.Println("Strictly prohibited")
		for _, f := range p.Prohibited {
			fmt.Printf("  %s %s\n", color.RedString("x"), f)
		}

		fmt.Println()
		bold.Println("Activity & lifestyle")
		for i, step := range p.Lifestyle {
			fmt.Printf("  %d. %s\n", i+1, bold.Sprint(step.Title))
			fmt.Printf("     %s\n", step.Detail)
		}

		fmt.Println()
		fmt.Println(faint.Sprint(p.Outcome))
		return nil
	},
}

var guideEducationCmd = &cobra.Command{
	Use:   "education",
	Short: "Explain how gastroparesis works",
	RunE: func(cmd *cobra.Command, args []string) error {
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		for i, topic := range content.EducationTopics {
			if i > 0 {
				fmt.Println()
			}
			bold.Printf("%d. %s\n", i+1, topic.Title)
			if topic.Intro != "" {
				fmt.Printf("   %s\n", topic.Intro)
			}
			for _, p := range topic.Points {
				fmt.Printf("   %s\n", bold.Sprint(p.Heading))
				fmt.Printf("     %s\n", faint.Sprint(p.Body))
			}
		}
		return nil
	},
}

var clinicCmd = &cobra.Command{
	Use:   "clinic",
	Short: "Show the motility clinic directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := content.HamiltonClinic
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)

		bold.Println(c.Name)
		fmt.Println(c.Specialty)
		fmt.Println(faint.Sprint(c.Campus))

		fmt.Println()
		bold.Println("Services")
		for _, s := range c.Services {
			fmt.Printf("  %s\n    %s\n", s.Name, faint.Sprint(s.Description))
		}

		fmt.Println()
		bold.Println("Access")
		fmt.Printf("  %s\n", c.Referral)
		fmt.Printf("  %s\n", c.WaitTimes)

		fmt.Println()
		bold.Println("Contacts")
		for _, ct := range c.Contacts {
			fmt.Printf("  %s  %s  %s\n", padRight(ct.Facility, 26), padRight(ct.Location, 32), ct.Phone)
		}
		return nil
	},
}

func init() {
	guideRecipesCmd.Flags().StringVar(&recipesTexture, "texture", "", "Only show recipes with this texture")
	guideCmd.AddCommand(guideRecipesCmd)
	guideCmd.AddCommand(guideFlareCmd)
	guideCmd.AddCommand(guideEducationCmd)
	rootCmd.AddCommand(guideCmd)
	rootCmd.AddCommand(clinicCmd)
}
