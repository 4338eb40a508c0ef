package recommend

import (
	"strings"

	"github.com/artem13815/pcbuild/pkg/llm"
)

const temperature = 0.7

const buildSystemPrompt = `You are an expert PC builder with deep knowledge of hardware compatibility, performance optimization, and price-to-performance ratios. Your goal is to recommend three PC build tiers (Good, Better, Best) within the user's budget.

For each build, provide:
1. Complete component list with specific models and prices
2. Performance expectations for the use case
3. Bottleneck analysis
4. Compatibility notes
5. Total estimated cost

Use realistic current market prices and ensure all components are compatible.`

const buildSchema = `For each tier, provide a JSON response with this structure:
{
  "builds": [
    {
      "tier": "Good|Better|Best",
      "totalCost": number,
      "performanceScore": number (1-10),
      "bottleneckPercentage": number,
      "powerConsumption": number,
      "components": {
        "cpu": { "model": "", "price": number, "reason": "" },
        "gpu": { "model": "", "price": number, "reason": "" },
        "ram": { "model": "", "price": number, "reason": "" },
        "motherboard": { "model": "", "price": number, "reason": "" },
        "storage": { "model": "", "price": number, "reason": "" },
        "psu": { "model": "", "price": number, "reason": "" },
        "case": { "model": "", "price": number, "reason": "" },
        "cooling": { "model": "", "price": number, "reason": "" }
      },
      "performanceExpectations": {
        "gaming": "",
        "productivity": "",
        "ml": ""
      },
      "compatibilityNotes": ""
    }
  ]
}`

const peripheralSystemPrompt = `You are an expert in computer peripherals with deep knowledge of gaming monitors, keyboards, mice, and headsets. Your goal is to recommend peripherals that complement the PC build and use case.`

const peripheralSchema = `Provide recommendations for monitor, keyboard, mouse, and headset in this JSON format:
{
  "peripherals": [
    {
      "category": "monitor|keyboard|mouse|headset",
      "model": "specific model name",
      "price": number,
      "reason": "why this is recommended",
      "specs": {
        "key": "value pairs of important specs"
      }
    }
  ]
}`

// BuildPrompt renders the build generation exchange.
func BuildPrompt(req BuildRequest) llm.Request {
	var sb strings.Builder
	sb.WriteString("Create three optimized PC builds (Good, Better, Best tiers) for:\n")
	sb.WriteString("- Budget: $" + string(req.Budget) + "\n")
	sb.WriteString("- Primary Use Case: " + string(req.UseCase) + "\n")
	if req.CustomRequirements != "" {
		sb.WriteString("- Custom Requirements: " + string(req.CustomRequirements) + "\n")
	}
	sb.WriteString("\n")
	sb.WriteString(buildSchema)

	return llm.Request{
		SystemPrompt: buildSystemPrompt,
		UserPrompt:   sb.String(),
		JSONOutput:   true,
		Temperature:  temperature,
	}
}

// PeripheralPrompt renders the peripheral recommendation exchange.
func PeripheralPrompt(req PeripheralRequest) llm.Request {
	cpu, gpu := SnapshotModels(req.Build)

	var sb strings.Builder
	sb.WriteString("Recommend peripherals for this PC build:\n")
	sb.WriteString("Build Details:\n")
	sb.WriteString("- Budget Remaining: $" + string(req.Budget) + "\n")
	sb.WriteString("- Use Case: " + string(req.UseCase) + "\n")
	sb.WriteString("- CPU: " + cpu + "\n")
	sb.WriteString("- GPU: " + gpu + "\n")
	sb.WriteString("\n")
	sb.WriteString(peripheralSchema)

	return llm.Request{
		SystemPrompt: peripheralSystemPrompt,
		UserPrompt:   sb.String(),
		JSONOutput:   true,
		Temperature:  temperature,
	}
}
