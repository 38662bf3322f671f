package contract

// AnalysisSchema is the JSON Schema structured inference output must satisfy.
// Providers that cannot enforce a schema natively embed it in the instructions.
const AnalysisSchema = `{
  "type": "object",
  "required": ["risks", "safe_clauses"],
  "properties": {
    "risks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["clause_text", "risk_level", "category", "baseline", "deviation", "suggestion"],
        "properties": {
          "clause_text": {"type": "string", "description": "Exact text of the suspicious clause found in the document"},
          "risk_level": {"type": "string", "enum": ["HIGH", "MEDIUM"], "description": "Strictly output: HIGH or MEDIUM"},
          "category": {"type": "string", "enum": ["Financial", "Career", "Privacy", "Legal", "Freedom"]},
          "baseline": {"type": "string", "description": "The standard, fair industry practice for this clause"},
          "deviation": {"type": "string", "description": "Why this clause deviates from the baseline and how it is one-sided"},
          "suggestion": {"type": "string", "description": "Actionable advice on what to negotiate"}
        }
      }
    },
    "safe_clauses": {
      "type": "array",
      "description": "Clauses checked that are standard or fair and not red flags",
      "items": {
        "type": "object",
        "required": ["clause_summary", "reason"],
        "properties": {
          "clause_summary": {"type": "string", "description": "Short summary of the standard clause, e.g. '30-Day Notice Period'"},
          "reason": {"type": "string", "description": "Why this is considered standard and safe"}
        }
      }
    }
  }
}`

//Personal.AI order the ending
