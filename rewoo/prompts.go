package rewoo

import (
	"fmt"
	"strings"

	"github.com/supportflow/supportflow/tools"
)

const plannerHeader = `For the following task, make plans that can solve the problem step by step. For each plan, indicate which external tool together with tool input to retrieve evidence. You can store the evidence into a variable #E that can be called by later tools. (Plan, #E1, Plan, #E2, Plan, ...)

Tools can be one of the following:
`

const plannerExample = `
For example:
Task: My order #12345 hasn't arrived, it was supposed to be a birthday gift for tomorrow. Can you check where it is, and if it won't arrive on time, I want to either expedite shipping or get a refund and buy locally. Also, do you have the same item in blue instead of red for future reference?

Plan: Check the current status and location of order #12345. #E1 = OrderStatus[12345]
Plan: Analyze the order status to determine if it will arrive on time. #E2 = LLM[Will order #12345 arrive by tomorrow based on #E1?]
Plan: If delayed, check available shipping options to expedite. #E3 = ModifyShipping[12345, expedite]
Plan: Check if refund is possible for this order. #E4 = ProcessRefund[12345, Customer request]
Plan: Search for the same item in blue color. #E5 = CheckInventory[same item as #E1 but in blue]

Begin!
IMPORTANT: You must follow the format exactly as shown in the example above.
Each line must start with "Plan:" followed by the description, then the evidence variable assignment.
Format: Plan: <description> #E<number> = <ToolName>[<parameters>]
Do NOT use markdown formatting, bullet points, or numbered lists.

Task: %s`

const solverTemplate = `You are a friendly customer service agent in a CHAT conversation. Based on the investigation below, provide a brief, conversational response.

%s

IMPORTANT - Chat Format Guidelines:
- Keep it SHORT and conversational (2-4 sentences max)
- NO email formatting (no "Subject:", "Hi there!", signatures, or formal closings)
- NO bullet points or lengthy lists
- Write naturally as if chatting in real-time
- Be warm but concise
- Get straight to the point

Task: %s
Response:`

// plannerPrompt renders the planner instruction for a task. The available
// actions are enumerated from the registry, with the LLM reasoning sentinel
// always listed last.
func plannerPrompt(registry *tools.Registry, task string) string {
	var b strings.Builder
	b.WriteString(plannerHeader)

	n := 0
	for _, t := range registry.List() {
		n++
		fmt.Fprintf(&b, "(%d) %s: %s\n", n, t.Signature(), t.Description)
	}
	fmt.Fprintf(&b, "(%d) %s[input]: A pretrained LLM like yourself. Useful when you need to act with general world knowledge and common sense. Prioritize it when you are confident in solving the problem yourself. Input can be any instruction.\n", n+1, LLMTool)

	fmt.Fprintf(&b, plannerExample, task)
	return b.String()
}

// solverPrompt renders the solver instruction from the resolved plan trace
// and the original task.
func solverPrompt(plan, task string) string {
	return fmt.Sprintf(solverTemplate, plan, task)
}
