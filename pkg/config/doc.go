// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


/*
Package config loads the workbench file that describes boxes, invoices
and the notification channel used by the solid CLI.

	            +-------------+
	            |   Config    |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   JSON   | |   YAML   | |   HCL    |
	|  Parser  | |  Parser  | |  Parser  |
	+----------+ +----------+ +----------+

🎯 Purpose:
- Reads boxes, invoices and notifier settings from one file
- Rejects unknown fields in every format
- Fills in defaults (the notifier channel falls back to email)

🔄 Flow:
1. GetParser picks a parser by extension
2. A bare .solid file is tried as YAML, then HCL
3. Validate checks names, formats and channels
4. Box, Generators and Channel hand domain values to callers

HCL expressions may read the environment through env, for example

	invoice "pdf" {
	  client = env.INVOICE_CLIENT
	  total  = 100
	}
*/
package config
